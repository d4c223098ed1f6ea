package web

import (
	"drcal/internal/events"
	"drcal/internal/logger"
	"drcal/internal/models"
	"drcal/internal/observability"
	"drcal/internal/utils"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler serves the server-rendered pages backing the scheduling UI.
type Handler struct {
	Scheduler *events.Scheduler
	Logger    *logger.Logger
	Metrics   *observability.Metrics
	templates *template.Template
}

func NewHandler(scheduler *events.Scheduler, log *logger.Logger, metrics *observability.Metrics) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Handler{
		Scheduler: scheduler,
		Logger:    log,
		Metrics:   metrics,
		templates: tmpl,
	}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/events", h.ListEvents)
	r.Get("/schedule_event", h.ScheduleForm)
	r.Post("/schedule_event", h.ScheduleSubmit)
	r.Post("/auto_schedule", h.AutoSchedule)
	r.Get("/edit_event/{eventID}", h.EditForm)
	r.Post("/edit_event/{eventID}", h.EditSubmit)

	// The scheduling form used to live on /add_event; keep the old URL
	// working for bookmarks and saved links.
	r.Get("/add_event", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/schedule_event", http.StatusMovedPermanently)
	})
	r.Post("/add_event", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/schedule_event", http.StatusPermanentRedirect)
	})
}

type indexPage struct {
	Events []models.Event
}

type schedulePage struct {
	Errors []string
	Form   models.EventRequest
}

type editPage struct {
	Event models.Event
}

func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.Logger.Error("WEB", fmt.Sprintf("Failed to render %s: %v", name, err))
	}
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", indexPage{Events: h.Scheduler.ListEvents()})
}

// ListEvents keeps the bare-array shape the calendar page polls.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, http.StatusOK, h.Scheduler.ListEvents())
}

func (h *Handler) ScheduleForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "schedule_event.html", schedulePage{})
}

func (h *Handler) ScheduleSubmit(w http.ResponseWriter, r *http.Request) {
	req := models.EventRequest{
		ScheduleType: r.PostFormValue("schedule_type"),
		Title:        r.PostFormValue("title"),
		Start:        r.PostFormValue("start"),
		End:          r.PostFormValue("end"),
		Description:  r.PostFormValue("description"),
	}
	if req.ScheduleType == "" {
		req.ScheduleType = models.EventTypeManual
	}

	event, errs := h.Scheduler.Schedule(req)
	if errs != nil {
		h.Metrics.IncValidationFailures()
		h.render(w, "schedule_event.html", schedulePage{Errors: errs, Form: req})
		return
	}

	h.Logger.LogEvent("CREATE", event.ID, event.Title)
	h.Metrics.IncEventsCreated(event.Type)
	h.Metrics.SetEventsStored(h.Scheduler.EventCount())

	// Redirect after POST so a browser refresh cannot resubmit the form.
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) AutoSchedule(w http.ResponseWriter, r *http.Request) {
	// Auto-scheduled events skip field validation, so this cannot fail.
	event, _ := h.Scheduler.Schedule(models.EventRequest{ScheduleType: models.EventTypeAuto})

	h.Logger.LogEvent("CREATE", event.ID, event.Title)
	h.Metrics.IncEventsCreated(event.Type)
	h.Metrics.SetEventsStored(h.Scheduler.EventCount())

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	event, err := h.Scheduler.GetEvent(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	h.render(w, "edit_event.html", editPage{Event: event})
}

func (h *Handler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "eventID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var upd models.EventUpdate
	if title := r.PostFormValue("title"); title != "" {
		upd.Title = &title
	}
	if raw := r.PostFormValue("start"); raw != "" {
		start, err := models.ParseLocalTime(raw)
		if err != nil {
			http.Error(w, "Invalid start date format", http.StatusBadRequest)
			return
		}
		upd.Start = &start
	}

	event, err := h.Scheduler.UpdateEvent(id, upd)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	h.Logger.LogEvent("UPDATE", event.ID, event.Title)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
