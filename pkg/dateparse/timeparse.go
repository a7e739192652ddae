package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
)

// Clock time forms seen in informal scheduling shorthand: "10:30", "10.30",
// "10u30", "10u", "om 10 uur". Hours-only forms normalize to ":00".
var (
	clockRegex    = regexp.MustCompile(`\b([01]?\d|2[0-3])[:.u]([0-5]\d)\b`)
	hourOnlyRegex = regexp.MustCompile(`\b([01]?\d|2[0-3])u\b`)
	omUurRegex    = regexp.MustCompile(`(?i)\bom\s+([01]?\d|2[0-3])(?:\s*uur)?\b`)
)

func findTime(input string) string {
	if m := clockRegex.FindStringSubmatch(input); m != nil {
		return normalizeClock(m[1], m[2])
	}
	if m := hourOnlyRegex.FindStringSubmatch(input); m != nil {
		return normalizeClock(m[1], "00")
	}
	if m := omUurRegex.FindStringSubmatch(input); m != nil {
		return normalizeClock(m[1], "00")
	}
	return ""
}

func normalizeClock(hour, minute string) string {
	h, err := strconv.Atoi(hour)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02d:%s", h, minute)
}
