package events

import (
	"errors"
	"sync"

	"drcal/internal/models"
)

// ErrNotFound is returned by every store operation that addresses an id the
// store does not hold. It is the only error the store produces.
var ErrNotFound = errors.New("event not found")

// EventStore owns the event collection and the id counter. Ids grow
// monotonically for the lifetime of the process and are never handed out
// twice, even after a delete. State is volatile; a restart starts over at
// id 1. All methods are safe for concurrent use.
type EventStore struct {
	mu     sync.RWMutex
	events []models.Event
	nextID int
}

func NewEventStore() *EventStore {
	return &EventStore{nextID: 1}
}

// Create assigns the next id to the candidate and appends it. Validation is
// the caller's responsibility; Create never fails.
func (s *EventStore) Create(candidate models.Event) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate.ID = s.nextID
	s.nextID++
	s.events = append(s.events, candidate)
	return candidate
}

// List returns the events in insertion order. The result is a copy; callers
// cannot reach the store's own slice through it.
func (s *EventStore) List() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *EventStore) Get(id int) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, ErrNotFound
}

// Update replaces the fields present in upd and leaves the rest untouched.
// Id and type never change. No validation runs here; an update can leave an
// event in a state creation would have rejected.
func (s *EventStore) Update(id int, upd models.EventUpdate) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		if upd.Title != nil {
			s.events[i].Title = *upd.Title
		}
		if upd.Start != nil {
			s.events[i].Start = *upd.Start
		}
		if upd.End != nil {
			s.events[i].End = *upd.End
		}
		if upd.Description != nil {
			s.events[i].Description = *upd.Description
		}
		return s.events[i], nil
	}
	return models.Event{}, ErrNotFound
}

// Delete removes the event. Its id stays retired; the counter never moves
// backwards.
func (s *EventStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Len reports the number of stored events.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
