package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zorgdesk/zorgcmd/pkg/models"
)

var _ models.ScheduleStore = &MemoryScheduleStore{}

// MemoryScheduleStore is an in-memory appointment store. It stands in for
// the planning system the deployment integrates with; schedule queries only
// ever read through the ScheduleStore interface.
type MemoryScheduleStore struct {
	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewMemoryScheduleStore() *MemoryScheduleStore {
	return &MemoryScheduleStore{}
}

// Add inserts an appointment, filling in a UUID and status when absent.
func (s *MemoryScheduleStore) Add(appointment models.Appointment) models.Appointment {
	if appointment.UUID == uuid.Nil {
		appointment.UUID = uuid.New()
	}
	if appointment.Status == "" {
		appointment.Status = models.AppointmentStatusScheduled
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = append(s.appointments, appointment)
	return appointment
}

// ListAppointments returns appointments overlapping the range, ordered by
// start time. patientName filters case-insensitively when non-empty.
func (s *MemoryScheduleStore) ListAppointments(
	_ context.Context,
	r models.DateRange,
	patientName string,
) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, a := range s.appointments {
		if a.Start.After(r.End) || a.End.Before(r.Start) {
			continue
		}
		if patientName != "" && !strings.EqualFold(a.PatientName, patientName) {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

// Seed fills the store with a demo schedule around ref. Used by the
// development server so agenda queries have something to return.
func (s *MemoryScheduleStore) Seed(ref time.Time) {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	demo := []models.Appointment{
		{
			PatientName: "Jan de Boer",
			Start:       day.Add(10 * time.Hour),
			End:         day.Add(10*time.Hour + 30*time.Minute),
			Description: "Fysiotherapie",
		},
		{
			PatientName: "Annie Smit",
			Start:       day.Add(14 * time.Hour),
			End:         day.Add(15 * time.Hour),
			Description: "Familiegesprek",
		},
		{
			PatientName: "Jan de Boer",
			Start:       day.Add(34 * time.Hour),
			End:         day.Add(34*time.Hour + 30*time.Minute),
			Description: "Wondcontrole",
		},
	}
	for _, a := range demo {
		s.Add(a)
	}
}
