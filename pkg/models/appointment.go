package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Appointment is the schedule entry returned by agenda queries. Persistence
// of appointments is owned by an external collaborator; this core only
// consumes the store interface below.
type Appointment struct {
	UUID        uuid.UUID `json:"uuid"`
	PatientName string    `json:"patientName"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
}

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "cancelled"
)

// ScheduleStore abstracts appointment lookup for schedule-query handlers.
type ScheduleStore interface {
	// ListAppointments returns appointments overlapping the range, ordered
	// by start time. patientName is an optional filter.
	ListAppointments(ctx context.Context, r DateRange, patientName string) ([]Appointment, error)
}
