package models

// Intent is the closed set of commands the classifier recognizes. Both the
// local tier and the AI tier classify into this set and nothing else.
type Intent string

const (
	IntentDagnotitie            Intent = "dagnotitie"
	IntentZoeken                Intent = "zoeken"
	IntentOverdracht            Intent = "overdracht"
	IntentAgendaQuery           Intent = "agenda_query"
	IntentCreateAppointment     Intent = "create_appointment"
	IntentCancelAppointment     Intent = "cancel_appointment"
	IntentRescheduleAppointment Intent = "reschedule_appointment"
	IntentUnknown               Intent = "unknown"
)

// Intents lists all valid intents in a stable order. Used to enumerate the
// closed set in the AI classifier prompt.
var Intents = []Intent{
	IntentDagnotitie,
	IntentZoeken,
	IntentOverdracht,
	IntentAgendaQuery,
	IntentCreateAppointment,
	IntentCancelAppointment,
	IntentRescheduleAppointment,
	IntentUnknown,
}

var validIntents = func() map[Intent]bool {
	m := make(map[Intent]bool, len(Intents))
	for _, i := range Intents {
		m[i] = true
	}
	return m
}()

func (i Intent) Valid() bool {
	return validIntents[i]
}

func (i Intent) String() string {
	return string(i)
}

// ParseIntent maps a raw string to an Intent. Anything outside the closed
// set maps to IntentUnknown.
func ParseIntent(s string) Intent {
	intent := Intent(s)
	if !intent.Valid() {
		return IntentUnknown
	}
	return intent
}

// NoteCategories is the closed set of nursing note categories. An EntityBag
// never carries a category outside this set.
var NoteCategories = []string{
	"adl",
	"medicatie",
	"voeding",
	"gedrag",
	"slaap",
	"mobiliteit",
	"algemeen",
}

var validNoteCategories = func() map[string]bool {
	m := make(map[string]bool, len(NoteCategories))
	for _, c := range NoteCategories {
		m[c] = true
	}
	return m
}()

func ValidNoteCategory(category string) bool {
	return validNoteCategories[category]
}
