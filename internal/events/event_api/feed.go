package event_api

import (
	"fmt"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
)

// CalendarFeed renders every stored event as an iCalendar document so
// the schedule can be subscribed to from a calendar client.
func (h *Handler) CalendarFeed(w http.ResponseWriter, r *http.Request) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//drcal//DR Test Schedule//EN")
	cal.SetName(h.CalendarName)

	now := time.Now()
	for _, event := range h.Scheduler.ListEvents() {
		entry := cal.AddEvent(fmt.Sprintf("event-%d@drcal", event.ID))
		entry.SetDtStampTime(now)
		entry.SetStartAt(event.Start.Time)
		entry.SetEndAt(event.End.Time)
		entry.SetSummary(event.Title)
		if event.Description != "" {
			entry.SetDescription(event.Description)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="dr-schedule.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(cal.Serialize()))
}
