package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pazarplus/toastkit/pkg/lifecycle"
	"github.com/pazarplus/toastkit/pkg/logger"
	"github.com/pazarplus/toastkit/pkg/stack"
	"github.com/pazarplus/toastkit/pkg/toast"
)

// envelope is the JSON response shape the surrounding application expects.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// enqueueRequest mirrors the showAlert(message, variant, options) call.
type enqueueRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Variant string `json:"variant"`

	// DurationMS: absent means the engine default, zero means persist
	// until dismissed.
	DurationMS *int64 `json:"duration_ms"`

	// ShowProgress defaults to true when absent.
	ShowProgress *bool `json:"show_progress"`

	Position string `json:"position"`
}

// Router mounts the toast endpoints on a fresh chi router.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/toasts", s.handleEnqueue)
	r.Delete("/toasts", s.handleClear)
	r.Delete("/toasts/{id}", s.handleDismiss)
	r.Post("/toasts/{id}/pause", s.handlePause)
	r.Post("/toasts/{id}/resume", s.handleResume)
	r.Get("/toasts/stream", s.handleStream)
	return r
}

func (s *Service) handleEnqueue(w http.ResponseWriter, r *http.Request) {
	var req enqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, envelope{Success: false, Message: "invalid request body"})
		return
	}

	// A negative duration defers to the manager's configured default.
	duration := time.Duration(-1)
	if req.DurationMS != nil && *req.DurationMS >= 0 {
		duration = time.Duration(*req.DurationMS) * time.Millisecond
	}
	showProgress := true
	if req.ShowProgress != nil {
		showProgress = *req.ShowProgress
	}

	n := toast.Notification{
		Title:        req.Title,
		Message:      req.Message,
		Variant:      toast.ParseVariant(req.Variant),
		Position:     toast.ParsePosition(req.Position),
		Duration:     duration,
		ShowProgress: showProgress,
	}

	id, err := s.manager.Enqueue(r.Context(), n)
	if err != nil {
		s.logger.Error("failed to enqueue toast", logger.Error(err))
		s.respond(w, http.StatusServiceUnavailable, envelope{Success: false, Message: "toast engine unavailable"})
		return
	}

	s.respond(w, http.StatusCreated, envelope{
		Success: true,
		Data:    map[string]string{"id": id},
		Message: "toast enqueued",
	})
}

func (s *Service) handleDismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reason := lifecycle.ReasonManual
	if r.URL.Query().Get("reason") == "escape" {
		reason = lifecycle.ReasonEscape
	}

	err := s.manager.DismissWithReason(id, reason)
	switch {
	case errors.Is(err, stack.ErrNotFound):
		s.respond(w, http.StatusNotFound, envelope{Success: false, Message: "toast not found"})
	case err != nil:
		s.respond(w, http.StatusServiceUnavailable, envelope{Success: false, Message: "toast engine unavailable"})
	default:
		s.respond(w, http.StatusOK, envelope{Success: true, Message: "toast dismissed"})
	}
}

func (s *Service) handleClear(w http.ResponseWriter, r *http.Request) {
	s.manager.DismissAll()
	s.respond(w, http.StatusOK, envelope{Success: true, Message: "toasts cleared"})
}

func (s *Service) handlePause(w http.ResponseWriter, r *http.Request) {
	s.handleCountdown(w, chi.URLParam(r, "id"), s.manager.Pause)
}

func (s *Service) handleResume(w http.ResponseWriter, r *http.Request) {
	s.handleCountdown(w, chi.URLParam(r, "id"), s.manager.Resume)
}

func (s *Service) handleCountdown(w http.ResponseWriter, id string, op func(string) error) {
	err := op(id)
	switch {
	case errors.Is(err, stack.ErrNotFound):
		s.respond(w, http.StatusNotFound, envelope{Success: false, Message: "toast not found"})
	case err != nil:
		s.respond(w, http.StatusServiceUnavailable, envelope{Success: false, Message: "toast engine unavailable"})
	default:
		s.respond(w, http.StatusOK, envelope{Success: true})
	}
}

func (s *Service) respond(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", logger.Error(err))
	}
}
