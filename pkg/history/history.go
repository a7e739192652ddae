package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zorgdesk/zorgcmd/pkg/models"
)

// DefaultCapacity bounds the history at what the command bar dropdown
// shows.
const DefaultCapacity = 5

var _ models.RecentActionStore = &Store{}

// Store is a fixed-capacity, most-recent-first action history. It is an
// in-memory UI convenience: contents do not survive a restart and that is
// fine.
type Store struct {
	mu       sync.Mutex
	actions  []models.RecentAction
	capacity int
}

// NewStore creates a history bounded at capacity entries. A non-positive
// capacity selects the default.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		actions:  make([]models.RecentAction, 0, capacity),
		capacity: capacity,
	}
}

// Add prepends the action, evicting the oldest entry when full. Missing ID
// or timestamp are filled in.
func (s *Store) Add(action models.RecentAction) {
	if action.ID == uuid.Nil {
		action.ID = uuid.New()
	}
	if action.Timestamp.IsZero() {
		action.Timestamp = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions = append([]models.RecentAction{action}, s.actions...)
	if len(s.actions) > s.capacity {
		s.actions = s.actions[:s.capacity]
	}
}

// List returns a copy of the history, newest first.
func (s *Store) List() []models.RecentAction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RecentAction, len(s.actions))
	copy(out, s.actions)
	return out
}
