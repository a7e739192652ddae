package dateparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Friday, December 27 2024, 09:00 UTC.
var ref = time.Date(2024, 12, 27, 9, 0, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	testCases := []struct {
		label     string
		wantStart time.Time
		wantEnd   time.Time
		wantLabel string
	}{
		{
			label:     "vandaag",
			wantStart: time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 27, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "vandaag",
		},
		{
			label:     "morgen",
			wantStart: time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 28, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "morgen",
		},
		{
			label:     "overmorgen",
			wantStart: time.Date(2024, 12, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 29, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "overmorgen",
		},
		{
			label:     "gisteren",
			wantStart: time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 26, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "gisteren",
		},
		{
			// Week of ref runs Monday 2024-12-23 through Sunday 2024-12-29.
			label:     "deze week",
			wantStart: time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 29, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "deze week",
		},
		{
			label:     "volgende week",
			wantStart: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 1, 5, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "volgende week",
		},
		{
			label:     "dit weekend",
			wantStart: time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 29, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "dit weekend",
		},
		{
			// Ref is a Friday, so "maandag" is the next Monday.
			label:     "maandag",
			wantStart: time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 30, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "maandag",
		},
		{
			// Same weekday as ref resolves to ref's own day.
			label:     "vrijdag",
			wantStart: time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 27, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "vrijdag",
		},
		{
			// Unrecognized labels fall back to today.
			label:     "ooit",
			wantStart: time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 27, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "vandaag",
		},
		{
			label:     "",
			wantStart: time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 27, 23, 59, 59, 999999999, time.UTC),
			wantLabel: "vandaag",
		},
	}

	for _, tc := range testCases {
		t.Run("label "+tc.label, func(t *testing.T) {
			got := Resolve(tc.label, ref)
			assert.True(t, got.Start.Equal(tc.wantStart), "start: got %v want %v", got.Start, tc.wantStart)
			assert.True(t, got.End.Equal(tc.wantEnd), "end: got %v want %v", got.End, tc.wantEnd)
			assert.Equal(t, tc.wantLabel, got.Label)
		})
	}
}

func TestResolveStartBeforeEnd(t *testing.T) {
	labels := append([]string{}, Labels...)
	labels = append(labels, "maandag", "dinsdag", "woensdag", "donderdag",
		"vrijdag", "zaterdag", "zondag", "onzin")

	for _, label := range labels {
		got := Resolve(label, ref)
		assert.False(t, got.Start.After(got.End), "start after end for label %q", label)
	}
}

func TestResolveIdempotent(t *testing.T) {
	for _, label := range Labels {
		first := Resolve(label, ref)
		second := Resolve(label, ref)
		assert.Equal(t, first, second, "label %q", label)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	assert.Equal(t, Resolve("morgen", ref), Resolve(" Morgen ", ref))
}

func TestResolveTime(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"afspraak morgen 10:30 met Piet", "10:30"},
		{"afspraak morgen 10.30 met Piet", "10:30"},
		{"afspraak morgen 10u30 met Piet", "10:30"},
		{"afspraak morgen 10u met Piet", "10:00"},
		{"afspraak morgen om 10 uur met Piet", "10:00"},
		{"afspraak morgen om 9 met Piet", "09:00"},
		{"afspraak morgen met Piet", ""},
		{"notitie Jan eet niet", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveTime(tc.input))
		})
	}
}
