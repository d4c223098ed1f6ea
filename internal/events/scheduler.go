package events

import (
	"time"

	"drcal/internal/models"
)

// Scheduler runs the shared creation pipeline. The browser form and the
// JSON API both go through here, so the two entry points cannot drift
// apart.
type Scheduler struct {
	store *EventStore
	now   func() time.Time
}

func NewScheduler(store *EventStore) *Scheduler {
	return &Scheduler{store: store, now: time.Now}
}

// NewSchedulerWithClock pins the clock. Tests use it to make validation and
// auto-scheduling deterministic.
func NewSchedulerWithClock(store *EventStore, clock func() time.Time) *Scheduler {
	return &Scheduler{store: store, now: clock}
}

// Schedule builds, validates and stores one event. A non-empty error list
// means nothing was written.
func (s *Scheduler) Schedule(req models.EventRequest) (*models.Event, []string) {
	isAuto := req.ScheduleType == models.EventTypeAuto

	var candidate models.Event
	if isAuto {
		candidate = NewAutoEvent(s.now())
	} else {
		candidate = NewManualEvent(req)
	}

	if errs := ValidateEvent(req, isAuto, s.now()); len(errs) > 0 {
		return nil, errs
	}

	stored := s.store.Create(candidate)
	return &stored, nil
}

// Read, update and delete pass straight through to the store so handlers
// only ever talk to the scheduler.

func (s *Scheduler) ListEvents() []models.Event {
	return s.store.List()
}

func (s *Scheduler) GetEvent(id int) (models.Event, error) {
	return s.store.Get(id)
}

func (s *Scheduler) UpdateEvent(id int, upd models.EventUpdate) (models.Event, error) {
	return s.store.Update(id, upd)
}

func (s *Scheduler) DeleteEvent(id int) error {
	return s.store.Delete(id)
}

func (s *Scheduler) EventCount() int {
	return s.store.Len()
}
