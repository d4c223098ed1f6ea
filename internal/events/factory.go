package events

import (
	"strings"
	"time"

	"drcal/internal/models"
)

// Auto-scheduled tests are booked seven weeks out at a fixed morning slot.
const (
	autoLeadDays    = 49
	autoStartHour   = 9
	autoDuration    = 2 * time.Hour
	autoTitle       = "Auto Scheduled DR Test"
	autoDescription = "Automatically scheduled Disaster Recovery Test - 7 weeks from creation date"
)

// NewAutoEvent builds the deterministic auto-scheduled candidate: seven
// weeks from now, starting 09:00, two hours long. The store assigns the id
// later.
func NewAutoEvent(now time.Time) models.Event {
	day := now.AddDate(0, 0, autoLeadDays)
	start := time.Date(day.Year(), day.Month(), day.Day(), autoStartHour, 0, 0, 0, day.Location())
	return models.Event{
		Title:       autoTitle,
		Start:       models.NewLocalTime(start),
		End:         models.NewLocalTime(start.Add(autoDuration)),
		Description: autoDescription,
		Type:        models.EventTypeAuto,
	}
}

// NewManualEvent builds a candidate from caller-supplied fields. Title and
// description are trimmed, timestamps are copied as given and come out zero
// valued when unparsable. The factory performs no validation; ValidateEvent
// is the separate step that decides whether a candidate may be stored.
func NewManualEvent(req models.EventRequest) models.Event {
	start, _ := models.ParseLocalTime(req.Start)
	end, _ := models.ParseLocalTime(req.End)
	return models.Event{
		Title:       strings.TrimSpace(req.Title),
		Start:       start,
		End:         end,
		Description: strings.TrimSpace(req.Description),
		Type:        models.EventTypeManual,
	}
}
