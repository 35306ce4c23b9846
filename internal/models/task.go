package models

import (
	"errors"
	"strings"
	"time"
)

// ErrTextRequired is returned by ValidateText for empty or whitespace-only text.
var ErrTextRequired = errors.New("text is required")

// Task represents a single to-do entry.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Patch is a partial update of a task. Nil fields are left unchanged.
type Patch struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Apply returns a copy of t with the patch merged in.
// The ID and CreatedAt of t are never modified.
func (p Patch) Apply(t Task) Task {
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// ValidateText trims text and checks that something is left.
// Callers run it before handing text to the task service, which stores text as given.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrTextRequired
	}
	return trimmed, nil
}
