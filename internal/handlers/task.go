package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tasklist/internal/models"
)

type createTaskRequest struct {
	Text string `json:"text"`
}

// ListTasks returns every task, most recent first.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	list, err := h.tasks.List(r.Context())
	if err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// CreateTask creates a new task from a JSON body.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	text, err := models.ValidateText(req.Text)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.tasks.Create(r.Context(), text)
	if err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// UpdateTask applies a partial update to an existing task.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch models.Patch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if patch.Text != nil {
		text, err := models.ValidateText(*patch.Text)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		patch.Text = &text
	}

	task, err := h.tasks.Update(r.Context(), id, patch)
	if err != nil {
		respondTaskError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// ToggleTask toggles the completion status of a task.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.Toggle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondTaskError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ack, err := h.tasks.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondTaskError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
