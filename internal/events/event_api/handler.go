package event_api

import (
	"drcal/internal/events"
	"drcal/internal/logger"
	"drcal/internal/models"
	"drcal/internal/observability"
	"drcal/internal/utils"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler serves the JSON API for scheduled DR test events.
type Handler struct {
	Scheduler    *events.Scheduler
	Logger       *logger.Logger
	Metrics      *observability.Metrics
	CalendarName string
}

func NewHandler(scheduler *events.Scheduler, log *logger.Logger, metrics *observability.Metrics, calendarName string) *Handler {
	return &Handler{
		Scheduler:    scheduler,
		Logger:       log,
		Metrics:      metrics,
		CalendarName: calendarName,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Post("/", h.CreateEvent)
		r.Get("/feed.ics", h.CalendarFeed)
		r.Get("/{eventID}", h.GetEvent)
		r.Put("/{eventID}", h.UpdateEvent)
		r.Delete("/{eventID}", h.DeleteEvent)
	})
}

// updateRequest distinguishes absent fields from empty ones, so a PUT
// only touches the fields it names.
type updateRequest struct {
	Title       *string `json:"title"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Description *string `json:"description"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	list := h.Scheduler.ListEvents()

	utils.SendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"events":  list,
		"total":   len(list),
	})
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSON(w, http.StatusBadRequest, utils.ErrorResponse("No JSON data provided"))
		return
	}

	event, errs := h.Scheduler.Schedule(req)
	if errs != nil {
		h.Metrics.IncValidationFailures()
		utils.SendJSON(w, http.StatusBadRequest, utils.ValidationErrorResponse(errs))
		return
	}

	h.Logger.LogEvent("CREATE", event.ID, event.Title)
	h.Metrics.IncEventsCreated(event.Type)
	h.Metrics.SetEventsStored(h.Scheduler.EventCount())

	utils.SendJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Event created successfully",
		"event":   event,
	})
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		utils.SendJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	event, err := h.Scheduler.GetEvent(id)
	if err != nil {
		utils.SendJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	utils.SendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"event":   event,
	})
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		utils.SendJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSON(w, http.StatusBadRequest, utils.ErrorResponse("No JSON data provided"))
		return
	}

	upd := models.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Start != nil {
		start, err := models.ParseLocalTime(*req.Start)
		if err != nil {
			utils.SendJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid start date format"))
			return
		}
		upd.Start = &start
	}
	if req.End != nil {
		end, err := models.ParseLocalTime(*req.End)
		if err != nil {
			utils.SendJSON(w, http.StatusBadRequest, utils.ErrorResponse("Invalid end date format"))
			return
		}
		upd.End = &end
	}

	event, err := h.Scheduler.UpdateEvent(id, upd)
	if err != nil {
		utils.SendJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	h.Logger.LogEvent("UPDATE", event.ID, event.Title)

	utils.SendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"event":   event,
	})
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		utils.SendJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	if err := h.Scheduler.DeleteEvent(id); err != nil {
		utils.SendJSON(w, http.StatusNotFound, utils.ErrorResponse("Event not found"))
		return
	}

	h.Logger.LogEvent("DELETE", id, "Event deleted")
	h.Metrics.IncEventsDeleted()
	h.Metrics.SetEventsStored(h.Scheduler.EventCount())

	utils.SendJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Event deleted successfully",
	})
}
