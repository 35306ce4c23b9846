package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tasklist/internal/models"
	"tasklist/internal/tasks"
)

// TaskService is the task list operations the handlers depend on.
type TaskService interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, text string) (models.Task, error)
	Update(ctx context.Context, id string, patch models.Patch) (models.Task, error)
	Toggle(ctx context.Context, id string) (models.Task, error)
	Delete(ctx context.Context, id string) (tasks.Ack, error)
}

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	tasks TaskService
}

// New creates a new Handlers instance.
func New(svc TaskService) *Handlers {
	return &Handlers{
		tasks: svc,
	}
}

// Routes registers the task API on r.
func (h *Handlers) Routes(r chi.Router) {
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Patch("/{id}", h.UpdateTask)
		r.Post("/{id}/toggle", h.ToggleTask)
		r.Delete("/{id}", h.DeleteTask)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON body with the given status code.
func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, errorResponse{Error: message})
}

func respondServerError(w http.ResponseWriter, err error) {
	log.Printf("internal server error: %v", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// respondTaskError maps task service failures to HTTP responses.
func respondTaskError(w http.ResponseWriter, err error) {
	if errors.Is(err, tasks.ErrNotFound) {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	respondServerError(w, err)
}
