package models

import (
	"time"

	"github.com/google/uuid"
)

// RecentAction is one entry in the bounded, most-recent-first command
// history. It exists purely for UI convenience and plays no role in
// classification.
type RecentAction struct {
	ID          uuid.UUID `json:"id"`
	Intent      Intent    `json:"intent"`
	Label       string    `json:"label"`
	PatientName string    `json:"patientName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// RecentActionStore is a bounded most-recent-first history of executed
// commands.
type RecentActionStore interface {
	Add(action RecentAction)
	List() []RecentAction
}
