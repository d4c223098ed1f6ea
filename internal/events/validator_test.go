package events_test

import (
	"strings"
	"testing"
	"time"

	"drcal/internal/events"
	"drcal/internal/models"

	"github.com/stretchr/testify/assert"
)

// Fixed reference clock so past/future checks are deterministic.
var testNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)

func validRequest() models.EventRequest {
	return models.EventRequest{
		ScheduleType: models.EventTypeManual,
		Title:        "Quarterly DR Test",
		Start:        "2025-07-01T10:00",
		End:          "2025-07-01T12:00",
		Description:  "Full failover test of the primary database cluster",
	}
}

func TestValidateEventAcceptsValidRequest(t *testing.T) {
	errs := events.ValidateEvent(validRequest(), false, testNow)
	assert.Empty(t, errs)
}

func TestValidateEventTitleRules(t *testing.T) {
	t.Run("Missing title", func(t *testing.T) {
		req := validRequest()
		req.Title = ""

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Title must be at least 3 characters long")
	})

	t.Run("Whitespace does not count towards the minimum", func(t *testing.T) {
		req := validRequest()
		req.Title = "  AB  "

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Title must be at least 3 characters long")
	})

	t.Run("Too long", func(t *testing.T) {
		req := validRequest()
		req.Title = strings.Repeat("x", 201)

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Title must be less than 200 characters")
	})

	t.Run("Boundary lengths pass", func(t *testing.T) {
		req := validRequest()
		req.Title = "abc"
		assert.Empty(t, events.ValidateEvent(req, false, testNow))

		req.Title = strings.Repeat("x", 200)
		assert.Empty(t, events.ValidateEvent(req, false, testNow))
	})

	t.Run("Short title is reported regardless of the other fields", func(t *testing.T) {
		for _, req := range []models.EventRequest{
			{Title: "AB", Start: "2025-07-01T10:00", End: "2025-07-01T12:00", Description: "a perfectly fine description"},
			{Title: "AB"},
			{Title: "AB", Start: "garbage", End: "garbage", Description: "short"},
		} {
			errs := events.ValidateEvent(req, false, testNow)
			assert.Contains(t, errs, "Title must be at least 3 characters long")
		}
	})
}

func TestValidateEventStartRules(t *testing.T) {
	t.Run("Missing start", func(t *testing.T) {
		req := validRequest()
		req.Start = ""

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Start date and time are required")
	})

	t.Run("Unparsable start", func(t *testing.T) {
		req := validRequest()
		req.Start = "not-a-date"

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Invalid start date format")
	})

	t.Run("Date without a time is rejected", func(t *testing.T) {
		req := validRequest()
		req.Start = "2025-07-01"

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Invalid start date format")
	})

	t.Run("Seconds are not part of the format", func(t *testing.T) {
		req := validRequest()
		req.Start = "2025-07-01T10:00:30"

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Invalid start date format")
	})

	t.Run("Start in the past", func(t *testing.T) {
		req := validRequest()
		req.Start = "2020-01-01T10:00"

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Start date cannot be in the past")
	})

	t.Run("Start exactly now is allowed", func(t *testing.T) {
		req := validRequest()
		req.Start = "2025-06-10T12:00"
		req.End = "2025-06-10T13:00"

		errs := events.ValidateEvent(req, false, testNow)
		assert.Empty(t, errs)
	})
}

func TestValidateEventEndRules(t *testing.T) {
	t.Run("Missing end", func(t *testing.T) {
		req := validRequest()
		req.End = ""

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "End date and time are required")
	})

	t.Run("Unparsable end", func(t *testing.T) {
		req := validRequest()
		req.End = "garbage"

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Invalid end date format")
	})

	t.Run("End equal to start", func(t *testing.T) {
		req := validRequest()
		req.End = req.Start

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "End time must be after start time")
	})

	t.Run("End before start", func(t *testing.T) {
		req := validRequest()
		req.Start = "2025-07-01T12:00"
		req.End = "2025-07-01T10:00"

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "End time must be after start time")
	})

	t.Run("Ordering is not checked when start does not parse", func(t *testing.T) {
		req := validRequest()
		req.Start = "garbage"

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Invalid start date format")
		assert.NotContains(t, errs, "End time must be after start time")
	})
}

func TestValidateEventDescriptionRules(t *testing.T) {
	t.Run("Missing description", func(t *testing.T) {
		req := validRequest()
		req.Description = ""

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Description must be at least 10 characters long")
	})

	t.Run("Too short after trimming", func(t *testing.T) {
		req := validRequest()
		req.Description = "  too short  "

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Description must be at least 10 characters long")
	})

	t.Run("Too long", func(t *testing.T) {
		req := validRequest()
		req.Description = strings.Repeat("x", 1001)

		errs := events.ValidateEvent(req, false, testNow)
		assert.Contains(t, errs, "Description must be less than 1000 characters")
	})

	t.Run("Boundary lengths pass", func(t *testing.T) {
		req := validRequest()
		req.Description = strings.Repeat("x", 10)
		assert.Empty(t, events.ValidateEvent(req, false, testNow))

		req.Description = strings.Repeat("x", 1000)
		assert.Empty(t, events.ValidateEvent(req, false, testNow))
	})
}

func TestValidateEventAccumulatesErrors(t *testing.T) {
	t.Run("Short title and short description are both reported", func(t *testing.T) {
		req := models.EventRequest{
			ScheduleType: models.EventTypeManual,
			Title:        "AB",
			Start:        "2099-01-01T10:00",
			End:          "2099-01-01T12:00",
			Description:  "short",
		}

		errs := events.ValidateEvent(req, false, testNow)
		assert.Equal(t, []string{
			"Title must be at least 3 characters long",
			"Description must be at least 10 characters long",
		}, errs)
	})

	t.Run("Empty request reports every missing field", func(t *testing.T) {
		errs := events.ValidateEvent(models.EventRequest{}, false, testNow)
		assert.Equal(t, []string{
			"Title must be at least 3 characters long",
			"Start date and time are required",
			"End date and time are required",
			"Description must be at least 10 characters long",
		}, errs)
	})
}

func TestValidateEventSkipsAutoRequests(t *testing.T) {
	// Auto events are generated from the clock; even a request full of
	// garbage fields passes.
	req := models.EventRequest{
		ScheduleType: models.EventTypeAuto,
		Title:        "x",
		Start:        "garbage",
		End:          "garbage",
		Description:  "x",
	}

	errs := events.ValidateEvent(req, true, testNow)
	assert.Nil(t, errs)
}
