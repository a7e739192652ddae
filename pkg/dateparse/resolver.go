package dateparse

import (
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"

	"github.com/zorgdesk/zorgcmd/pkg/models"
)

// DefaultLabel is the range every unrecognized label resolves to. Schedule
// queries always need some range, so resolution never fails.
const DefaultLabel = "vandaag"

var weekdays = map[string]time.Weekday{
	"maandag":   time.Monday,
	"dinsdag":   time.Tuesday,
	"woensdag":  time.Wednesday,
	"donderdag": time.Thursday,
	"vrijdag":   time.Friday,
	"zaterdag":  time.Saturday,
	"zondag":    time.Sunday,
}

// Labels lists the non-weekday labels the resolver recognizes, in the order
// the entity extractor scans for them. Longer phrases come first so that
// "volgende week" is matched before a bare weekday inside it.
var Labels = []string{
	"eergisteren",
	"overmorgen",
	"vandaag",
	"morgen",
	"gisteren",
	"deze week",
	"volgende week",
	"vorige week",
	"dit weekend",
	"deze maand",
}

// Resolve turns a natural-language date label into an absolute range
// relative to ref. It is a pure function of (label, ref): identical inputs
// give identical output, and Start <= End always holds. Unrecognized labels
// resolve to the day of ref with the fallback label.
func Resolve(label string, ref time.Time) models.DateRange {
	normalized := strings.ToLower(strings.TrimSpace(label))
	c := carbon.CreateFromStdTime(ref)

	switch normalized {
	case "vandaag":
		return day(c, "vandaag")
	case "morgen":
		return day(c.AddDay(), "morgen")
	case "overmorgen":
		return day(c.AddDays(2), "overmorgen")
	case "gisteren":
		return day(c.SubDay(), "gisteren")
	case "eergisteren":
		return day(c.SubDays(2), "eergisteren")
	case "deze week":
		return week(c, 0, "deze week")
	case "volgende week":
		return week(c, 1, "volgende week")
	case "vorige week":
		return week(c, -1, "vorige week")
	case "dit weekend":
		return weekend(c)
	case "deze maand":
		return models.DateRange{
			Start: c.StartOfMonth().ToStdTime(),
			End:   c.EndOfMonth().ToStdTime(),
			Label: "deze maand",
		}
	}

	if wd, ok := weekdays[normalized]; ok {
		return nextWeekday(c, ref, wd, normalized)
	}

	return day(c, DefaultLabel)
}

// ResolveTime parses an explicit clock time out of a raw command string.
// Accepted forms: "10:30", "10.30", "10u30", "10u" and "om 10 uur". Returns
// the normalized "HH:MM" form, or "" when no time is present.
func ResolveTime(input string) string {
	return findTime(input)
}

func day(c carbon.Carbon, label string) models.DateRange {
	return models.DateRange{
		Start: c.StartOfDay().ToStdTime(),
		End:   c.EndOfDay().ToStdTime(),
		Label: label,
	}
}

// week returns the Monday-to-Sunday week offset weeks from ref's week.
// Week boundaries are computed by hand so we don't depend on carbon's
// configurable week start.
func week(c carbon.Carbon, offset int, label string) models.DateRange {
	daysSinceMonday := (int(c.ToStdTime().Weekday()) + 6) % 7
	monday := c.SubDays(daysSinceMonday).AddDays(offset * 7)
	return models.DateRange{
		Start: monday.StartOfDay().ToStdTime(),
		End:   monday.AddDays(6).EndOfDay().ToStdTime(),
		Label: label,
	}
}

// weekend returns the Saturday-Sunday of ref's week. During a weekend the
// current weekend is returned, not the next one.
func weekend(c carbon.Carbon) models.DateRange {
	daysSinceMonday := (int(c.ToStdTime().Weekday()) + 6) % 7
	saturday := c.SubDays(daysSinceMonday).AddDays(5)
	return models.DateRange{
		Start: saturday.StartOfDay().ToStdTime(),
		End:   saturday.AddDay().EndOfDay().ToStdTime(),
		Label: "dit weekend",
	}
}

// nextWeekday resolves a weekday name to its next occurrence. The day of
// ref itself counts: "vrijdag" spoken on a Friday means that same day.
func nextWeekday(c carbon.Carbon, ref time.Time, wd time.Weekday, label string) models.DateRange {
	ahead := (int(wd) - int(ref.Weekday()) + 7) % 7
	return day(c.AddDays(ahead), label)
}
