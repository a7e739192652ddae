package classifier

import (
	"regexp"

	"github.com/zorgdesk/zorgcmd/pkg/models"
)

// IntentPattern is one rule in the pattern library: a match predicate, the
// intent it votes for, and a static confidence weight. Weights are tuned
// empirically against the command-bar corpus, not derived.
type IntentPattern struct {
	Name   string
	Intent models.Intent
	Match  *regexp.Regexp
	Weight float64
}

// DefaultPatterns is the ordered pattern library. Order is load-bearing:
// when two patterns carry the same weight, the earlier declaration wins.
// Keep it a slice, never a map.
var DefaultPatterns = []IntentPattern{
	{
		Name:   "dagnotitie_prefix",
		Intent: models.IntentDagnotitie,
		Match:  regexp.MustCompile(`(?i)^(dag)?notitie\b`),
		Weight: 0.95,
	},
	{
		Name:   "dagnotitie_noteer",
		Intent: models.IntentDagnotitie,
		Match:  regexp.MustCompile(`(?i)^noteer\b`),
		Weight: 0.9,
	},
	{
		Name:   "dagnotitie_rapportage",
		Intent: models.IntentDagnotitie,
		Match:  regexp.MustCompile(`(?i)\brapport(age|eer)\b`),
		Weight: 0.85,
	},
	{
		Name:   "zoeken_prefix",
		Intent: models.IntentZoeken,
		Match:  regexp.MustCompile(`(?i)^zoek\b`),
		Weight: 0.9,
	},
	{
		Name:   "zoeken_patient",
		Intent: models.IntentZoeken,
		Match:  regexp.MustCompile(`(?i)\bzoek\s+(naar\s+)?(pati[eë]nt|cli[eë]nt|bewoner)\b`),
		Weight: 0.9,
	},
	{
		Name:   "zoeken_wie_is",
		Intent: models.IntentZoeken,
		Match:  regexp.MustCompile(`(?i)^wie is\b`),
		Weight: 0.8,
	},
	{
		Name:   "overdracht",
		Intent: models.IntentOverdracht,
		Match:  regexp.MustCompile(`(?i)\boverdracht\b`),
		Weight: 0.9,
	},
	// Cancel and reschedule are declared before the create and agenda
	// patterns: "annuleer afspraak" also contains "afspraak".
	{
		Name:   "cancel_appointment",
		Intent: models.IntentCancelAppointment,
		Match:  regexp.MustCompile(`(?i)\bannuleer\b|\bafzeggen\b|\bzeg\b.*\baf\b|\bcancel\b`),
		Weight: 0.9,
	},
	{
		Name:   "reschedule_appointment",
		Intent: models.IntentRescheduleAppointment,
		Match:  regexp.MustCompile(`(?i)\bverzet(ten)?\b|\bverplaats(en)?\b|\bverschuif\b`),
		Weight: 0.9,
	},
	{
		Name:   "create_appointment_verb",
		Intent: models.IntentCreateAppointment,
		Match:  regexp.MustCompile(`(?i)\b(nieuwe|maak|plan|inplannen)\b.{0,40}\bafspraak\b`),
		Weight: 0.9,
	},
	{
		Name:   "create_appointment_details",
		Intent: models.IntentCreateAppointment,
		Match:  regexp.MustCompile(`(?i)\bafspraak\b.{0,60}\b(om|met|op)\b`),
		Weight: 0.85,
	},
	{
		Name:   "agenda_query",
		Intent: models.IntentAgendaQuery,
		Match:  regexp.MustCompile(`(?i)\bagenda\b|\bafspraken\b|\bwat staat er\b|\brooster\b`),
		Weight: 0.85,
	},
	// Weak catch-alls. These sit below the confidence threshold on
	// purpose: they give the AI tier a hint via localResult without
	// short-circuiting escalation.
	{
		Name:   "appointment_keyword",
		Intent: models.IntentAgendaQuery,
		Match:  regexp.MustCompile(`(?i)\bafspraak\b`),
		Weight: 0.6,
	},
	{
		Name:   "note_keyword",
		Intent: models.IntentDagnotitie,
		Match:  regexp.MustCompile(`(?i)\bnotitie\b`),
		Weight: 0.6,
	},
}
