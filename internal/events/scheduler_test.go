package events_test

import (
	"testing"
	"time"

	"drcal/internal/events"
	"drcal/internal/models"

	"github.com/stretchr/testify/assert"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestScheduleStoresValidManualRequest(t *testing.T) {
	store := events.NewEventStore()
	scheduler := events.NewSchedulerWithClock(store, fixedClock(testNow))

	req := validRequest()
	req.Title = "  Quarterly DR Test  "

	event, errs := scheduler.Schedule(req)

	assert.Nil(t, errs)
	assert.Equal(t, 1, event.ID)
	assert.Equal(t, "Quarterly DR Test", event.Title, "stored title is trimmed")
	assert.Equal(t, models.EventTypeManual, event.Type)

	got, err := scheduler.GetEvent(event.ID)
	assert.NoError(t, err)
	assert.Equal(t, *event, got)
}

func TestScheduleRejectsInvalidRequestWithoutWriting(t *testing.T) {
	store := events.NewEventStore()
	scheduler := events.NewSchedulerWithClock(store, fixedClock(testNow))

	req := validRequest()
	req.Title = "AB"
	req.Description = "short"

	event, errs := scheduler.Schedule(req)

	assert.Nil(t, event)
	assert.Len(t, errs, 2)
	assert.Equal(t, 0, scheduler.EventCount(), "a rejected request must not touch the store")
}

func TestScheduleAutoBypassesValidation(t *testing.T) {
	store := events.NewEventStore()
	scheduler := events.NewSchedulerWithClock(store, fixedClock(testNow))

	// Manual fields in an auto request are ignored outright.
	event, errs := scheduler.Schedule(models.EventRequest{
		ScheduleType: models.EventTypeAuto,
		Title:        "x",
		Start:        "garbage",
	})

	assert.Nil(t, errs)
	assert.Equal(t, models.EventTypeAuto, event.Type)
	assert.Equal(t, "Auto Scheduled DR Test", event.Title)
	assert.Equal(t, "2025-07-29T09:00", event.Start.String())
	assert.Equal(t, "2025-07-29T11:00", event.End.String())
	assert.Equal(t, 1, scheduler.EventCount())
}

func TestScheduleTreatsUnknownTypeAsManual(t *testing.T) {
	store := events.NewEventStore()
	scheduler := events.NewSchedulerWithClock(store, fixedClock(testNow))

	for _, scheduleType := range []string{"", "weekly", "MANUAL"} {
		req := validRequest()
		req.ScheduleType = scheduleType

		event, errs := scheduler.Schedule(req)
		assert.Nil(t, errs)
		assert.Equal(t, models.EventTypeManual, event.Type, "schedule_type %q", scheduleType)
	}
}

func TestScheduleUsesInjectedClock(t *testing.T) {
	store := events.NewEventStore()
	scheduler := events.NewSchedulerWithClock(store, fixedClock(testNow))

	req := validRequest()
	req.Start = testNow.Add(-time.Minute).Format(models.TimeLayout)

	event, errs := scheduler.Schedule(req)

	assert.Nil(t, event)
	assert.Contains(t, errs, "Start date cannot be in the past")
}
