// Package store owns the in-memory ticket collection for the active session.
//
// The store has exactly two kinds of writers: the optimistic mutation path
// (SetStatus/prepend) and full re-fetch reconciliation (ReplaceAll). A
// re-fetch is always authoritative and overwrites any locally optimistic
// value, which is how late-arriving responses are tolerated: the next
// refresh settles the truth.
package store

import (
	"sync"

	"github.com/dmitrijs2005/supportpilot/internal/client/models"
)

// TicketStore holds the session's tickets. All methods are safe for
// concurrent use; returned slices and tickets are copies, so callers can
// never alias internal state.
type TicketStore struct {
	mu      sync.RWMutex
	tickets []models.Ticket
}

func New() *TicketStore {
	return &TicketStore{}
}

// ReplaceAll swaps in the authoritative collection from a full re-fetch.
func (s *TicketStore) ReplaceAll(tickets []models.Ticket) {
	cp := make([]models.Ticket, len(tickets))
	copy(cp, tickets)

	s.mu.Lock()
	s.tickets = cp
	s.mu.Unlock()
}

// Prepend inserts a freshly created ticket at the head of the list, the way
// the dashboard shows the newest ticket first.
func (s *TicketStore) Prepend(t models.Ticket) {
	s.mu.Lock()
	s.tickets = append([]models.Ticket{t}, s.tickets...)
	s.mu.Unlock()
}

// List returns a copy of the current collection.
func (s *TicketStore) List() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]models.Ticket, len(s.tickets))
	copy(cp, s.tickets)
	return cp
}

// Get returns the ticket with the given id, or false when it is not held.
func (s *TicketStore) Get(id string) (models.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return models.Ticket{}, false
}

// SetStatus applies a status to the local record and returns the status it
// replaced. Used by the optimistic mutation path: the prior status is what a
// failed remote call reverts to. Returns false when the ticket is unknown.
func (s *TicketStore) SetStatus(id string, status models.Status) (models.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			prior := s.tickets[i].Status
			s.tickets[i].Status = status
			return prior, true
		}
	}
	return "", false
}

// Len reports the number of tickets held.
func (s *TicketStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}
