package extractors

import (
	"regexp"
	"strings"
	"time"

	"github.com/zorgdesk/zorgcmd/pkg/dateparse"
	"github.com/zorgdesk/zorgcmd/pkg/models"
)

// namePattern matches a Dutch proper name: a capitalized word optionally
// followed by tussenvoegsels and further capitalized words, so "Jan",
// "Jan Jansen" and "Jan van der Berg" all match as one name.
const namePattern = `\p{Lu}\p{Ll}+(?:(?:\s+(?:de|den|der|van|ter|te|'t))+\s+\p{Lu}\p{Ll}+|\s+\p{Lu}\p{Ll}+)*`

var (
	honorificNameRegex = regexp.MustCompile(`(?:[Mm]eneer|[Mm]evrouw|[Mm]evr\.?|[Mm]w\.?|[Dd]hr\.?)\s+(` + namePattern + `)`)
	leadingNameRegex   = regexp.MustCompile(`^(` + namePattern + `)`)
	markerNameRegex    = regexp.MustCompile(`\b(?:met|van|voor|bij)\s+(` + namePattern + `)`)

	patientIDRegex = regexp.MustCompile(`(?i)(?:\bpati[eë]nt(?:nummer|nr\.?)?|\bcli[eë]nt(?:nummer)?|\bid)\s*[:#]?\s*(\d+)\b|#(\d+)\b`)

	notePrefixRegex   = regexp.MustCompile(`(?i)^(?:dag)?notitie\b:?\s*|^noteer\b(?:\s+dat\b)?\s*|^rapport(?:age|eer)\b:?\s*`)
	searchPrefixRegex = regexp.MustCompile(`(?i)^zoek(?:en)?\b(?:\s+naar\b)?(?:\s+(?:pati[eë]nt|cli[eë]nt|bewoner)\b)?\s*|^wie is\b\s*`)
)

// categoryKeywords maps explicit category keywords to the closed note
// category set. Only a literal keyword selects a category; verbs that merely
// relate to one ("eet niet", "slaapt slecht") never do.
var categoryKeywords = []struct {
	match    *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`(?i)\badl\b`), "adl"},
	{regexp.MustCompile(`(?i)\bmedicatie\b|\bmedicijn(?:en)?\b`), "medicatie"},
	{regexp.MustCompile(`(?i)\bvoeding\b`), "voeding"},
	{regexp.MustCompile(`(?i)\bgedrag\b`), "gedrag"},
	{regexp.MustCompile(`(?i)\bslaap\b`), "slaap"},
	{regexp.MustCompile(`(?i)\bmobiliteit\b`), "mobiliteit"},
}

// labelRegexps is built once from the resolver's label and weekday
// vocabulary. Word-boundary anchors keep "morgen" from matching inside
// "overmorgen".
var labelRegexps = buildLabelRegexps()

func buildLabelRegexps() []struct {
	match *regexp.Regexp
	label string
} {
	labels := make([]string, 0, len(dateparse.Labels)+7)
	labels = append(labels, dateparse.Labels...)
	labels = append(labels,
		"maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag", "zondag")

	out := make([]struct {
		match *regexp.Regexp
		label string
	}, 0, len(labels))
	for _, l := range labels {
		out = append(out, struct {
			match *regexp.Regexp
			label string
		}{regexp.MustCompile(`(?i)\b` + l + `\b`), l})
	}
	return out
}

// Extract pulls the intent-specific entity slots out of a raw command. It
// is a total function: any (input, intent) pair yields a bag, possibly
// empty. Slots that cannot be found are left absent, never guessed.
func Extract(input string, intent models.Intent, ref time.Time) models.EntityBag {
	input = strings.TrimSpace(input)

	switch intent {
	case models.IntentDagnotitie:
		return extractNote(input)
	case models.IntentZoeken:
		return extractSearch(input)
	case models.IntentOverdracht, models.IntentAgendaQuery:
		return extractScheduleQuery(input, ref)
	case models.IntentCreateAppointment,
		models.IntentCancelAppointment,
		models.IntentRescheduleAppointment:
		return extractAppointment(input, ref)
	}
	return models.EntityBag{}
}

func extractNote(input string) models.EntityBag {
	var bag models.EntityBag
	bag.PatientID = findPatientID(input)
	bag.Category = findCategory(input)

	rest := notePrefixRegex.ReplaceAllString(input, "")
	rest = strings.TrimSpace(rest)

	if m := honorificNameRegex.FindStringSubmatchIndex(rest); m != nil {
		bag.PatientName = rest[m[2]:m[3]]
		bag.Content = trimContent(rest[:m[0]] + rest[m[1]:])
		return bag
	}
	if m := leadingNameRegex.FindStringSubmatchIndex(rest); m != nil {
		bag.PatientName = rest[m[2]:m[3]]
		bag.Content = trimContent(rest[m[1]:])
		return bag
	}

	bag.Content = trimContent(rest)
	return bag
}

func extractSearch(input string) models.EntityBag {
	var bag models.EntityBag
	bag.PatientID = findPatientID(input)

	rest := strings.TrimSpace(searchPrefixRegex.ReplaceAllString(input, ""))
	if rest == "" {
		return bag
	}
	if m := leadingNameRegex.FindStringSubmatch(rest); m != nil {
		bag.PatientName = m[1]
		return bag
	}
	bag.Content = rest
	return bag
}

func extractScheduleQuery(input string, ref time.Time) models.EntityBag {
	var bag models.EntityBag
	bag.PatientID = findPatientID(input)
	bag.PatientName = findMarkedName(input)

	if label, ok := findDateLabel(input); ok {
		r := dateparse.Resolve(label, ref)
		bag.DateRange = &r
	}
	return bag
}

func extractAppointment(input string, ref time.Time) models.EntityBag {
	bag := extractScheduleQuery(input, ref)
	bag.Time = dateparse.ResolveTime(input)
	return bag
}

func findPatientID(input string) string {
	m := patientIDRegex.FindStringSubmatch(input)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

func findCategory(input string) string {
	for _, ck := range categoryKeywords {
		if ck.match.MatchString(input) {
			return ck.category
		}
	}
	return ""
}

func findMarkedName(input string) string {
	if m := honorificNameRegex.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	if m := markerNameRegex.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return ""
}

func findDateLabel(input string) (string, bool) {
	for _, lr := range labelRegexps {
		if lr.match.MatchString(input) {
			return lr.label, true
		}
	}
	return "", false
}

func trimContent(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, ":,-")
	return strings.TrimSpace(s)
}
