package events

import (
	"strings"
	"time"
	"unicode/utf8"

	"drcal/internal/models"
)

// Bounds for caller-supplied fields, counted in characters after trimming.
const (
	titleMinLen       = 3
	titleMaxLen       = 200
	descriptionMinLen = 10
	descriptionMaxLen = 1000
)

// ValidateEvent checks the raw fields of a creation request and returns
// every rule violation as a human-readable message. An empty result means
// the request is valid. Auto-scheduled events are generated from trusted
// values, so isAuto skips all checks. The clock is a parameter so callers
// can pin "now" for deterministic results.
func ValidateEvent(req models.EventRequest, isAuto bool, now time.Time) []string {
	if isAuto {
		return nil
	}

	var errs []string

	title := strings.TrimSpace(req.Title)
	if utf8.RuneCountInString(title) < titleMinLen {
		errs = append(errs, "Title must be at least 3 characters long")
	} else if utf8.RuneCountInString(title) > titleMaxLen {
		errs = append(errs, "Title must be less than 200 characters")
	}

	var start time.Time
	startValid := false
	if req.Start == "" {
		errs = append(errs, "Start date and time are required")
	} else if parsed, err := time.ParseInLocation(models.TimeLayout, req.Start, time.Local); err != nil {
		errs = append(errs, "Invalid start date format")
	} else {
		start = parsed
		startValid = true
		if start.Before(now) {
			errs = append(errs, "Start date cannot be in the past")
		}
	}

	// The ordering rule only applies once both timestamps parse.
	if req.End == "" {
		errs = append(errs, "End date and time are required")
	} else if end, err := time.ParseInLocation(models.TimeLayout, req.End, time.Local); err != nil {
		errs = append(errs, "Invalid end date format")
	} else if startValid && !end.After(start) {
		errs = append(errs, "End time must be after start time")
	}

	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(description) < descriptionMinLen {
		errs = append(errs, "Description must be at least 10 characters long")
	} else if utf8.RuneCountInString(description) > descriptionMaxLen {
		errs = append(errs, "Description must be less than 1000 characters")
	}

	return errs
}
