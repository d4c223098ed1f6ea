package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeLayout is the wall-clock timestamp format used wherever an event
// crosses a process boundary: JSON payloads, form fields and templates.
// There is no timezone component; times are local by convention.
const TimeLayout = "2006-01-02T15:04"

// Schedule types. Auto events are generated from the clock and bypass field
// validation; manual events carry caller-supplied fields.
const (
	EventTypeManual = "manual"
	EventTypeAuto   = "auto"
)

// LocalTime is a wall-clock timestamp that marshals to the
// "YYYY-MM-DDTHH:MM" form calendar clients send and expect.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t}
}

// ParseLocalTime parses a wall-clock string in TimeLayout.
func ParseLocalTime(value string) (LocalTime, error) {
	t, err := time.ParseInLocation(TimeLayout, value, time.Local)
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTime{Time: t}, nil
}

func (t LocalTime) String() string {
	return t.Format(TimeLayout)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(TimeLayout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

// Event is one scheduled disaster-recovery test. Ids are assigned by the
// store and never change; Type is fixed at creation.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Start       LocalTime `json:"start"`
	End         LocalTime `json:"end"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
}

// EventRequest carries the raw fields of a creation request, from either the
// browser form or the JSON API. Start and end stay strings here so a bad
// timestamp surfaces as a validation error rather than a decode failure.
type EventRequest struct {
	ScheduleType string `json:"schedule_type"`
	Title        string `json:"title"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Description  string `json:"description"`
}

// EventUpdate is a partial update. Nil fields are left untouched; id and
// type are not updatable at all.
type EventUpdate struct {
	Title       *string
	Start       *LocalTime
	End         *LocalTime
	Description *string
}
