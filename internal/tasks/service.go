// Package tasks implements the task list service on top of a key-value backend.
//
// Every call loads the whole collection from a single storage entry, transforms it in
// memory and, for mutations, writes the whole collection back. This only suits small
// single-user lists.
package tasks

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"tasklist/internal/models"
	"tasklist/internal/store"
)

// Ack acknowledges a successful delete.
type Ack struct {
	Success bool `json:"success"`
}

// Service owns the persisted task collection.
type Service struct {
	backend store.Backend

	// mu serializes each read-modify-write of the stored collection.
	mu sync.Mutex

	key    string
	delay  time.Duration
	sleep  func(time.Duration)
	now    func() time.Time
	newID  func() string
	logger *log.Logger
}

// New creates a Service persisting to backend.
func New(backend store.Backend, opts ...Option) (*Service, error) {
	if backend == nil {
		return nil, ErrBackendNil
	}

	s := &Service{backend: backend}
	defaults(s)
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// List returns all tasks, most recently created first.
func (s *Service) List(ctx context.Context) ([]models.Task, error) {
	return withLatency(s, func() ([]models.Task, error) {
		tasks, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
		return tasks, nil
	})
}

// Create stores a new incomplete task with the given text and returns it.
// The text is stored as given; callers validate it with models.ValidateText.
func (s *Service) Create(ctx context.Context, text string) (models.Task, error) {
	return withLatency(s, func() (models.Task, error) {
		tasks, err := s.load(ctx)
		if err != nil {
			return models.Task{}, err
		}

		task := models.Task{
			ID:        s.newID(),
			Text:      text,
			Completed: false,
			CreatedAt: s.now().UTC(),
		}

		if err := s.save(ctx, append([]models.Task{task}, tasks...)); err != nil {
			return models.Task{}, err
		}
		return task, nil
	})
}

// Update merges patch into the task with the given id and returns the result.
func (s *Service) Update(ctx context.Context, id string, patch models.Patch) (models.Task, error) {
	return s.modify(ctx, id, patch.Apply)
}

// Toggle flips the completion flag of the task with the given id.
func (s *Service) Toggle(ctx context.Context, id string) (models.Task, error) {
	return s.modify(ctx, id, func(t models.Task) models.Task {
		t.Completed = !t.Completed
		return t
	})
}

// Delete permanently removes the task with the given id.
func (s *Service) Delete(ctx context.Context, id string) (Ack, error) {
	return withLatency(s, func() (Ack, error) {
		tasks, err := s.load(ctx)
		if err != nil {
			return Ack{}, err
		}

		kept := make([]models.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			return Ack{}, ErrNotFound
		}

		if err := s.save(ctx, kept); err != nil {
			return Ack{}, err
		}
		return Ack{Success: true}, nil
	})
}

func (s *Service) modify(ctx context.Context, id string, change func(models.Task) models.Task) (models.Task, error) {
	return withLatency(s, func() (models.Task, error) {
		tasks, err := s.load(ctx)
		if err != nil {
			return models.Task{}, err
		}

		idx := -1
		for i, t := range tasks {
			if t.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return models.Task{}, ErrNotFound
		}

		updated := change(tasks[idx])
		// identity and creation time are immutable
		updated.ID = tasks[idx].ID
		updated.CreatedAt = tasks[idx].CreatedAt
		tasks[idx] = updated

		if err := s.save(ctx, tasks); err != nil {
			return models.Task{}, err
		}
		return updated, nil
	})
}

// withLatency runs fn under the service lock and, if it succeeded, waits out the
// simulated latency after the lock is released.
func withLatency[T any](s *Service, fn func() (T, error)) (T, error) {
	s.mu.Lock()
	result, err := fn()
	s.mu.Unlock()

	if err != nil {
		var zero T
		return zero, err
	}

	if s.delay > 0 {
		s.sleep(s.delay)
	}
	return result, nil
}

// load and save detach ctx from cancellation: a started call always completes.
func (s *Service) load(ctx context.Context) ([]models.Task, error) {
	raw, found, err := s.backend.Get(context.WithoutCancel(ctx), s.key)
	if err != nil {
		return nil, s.storageErr("read", err)
	}
	if !found || len(raw) == 0 {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, s.storageErr("decode", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

func (s *Service) save(ctx context.Context, tasks []models.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return s.storageErr("encode", err)
	}

	if err := s.backend.Set(context.WithoutCancel(ctx), s.key, raw); err != nil {
		return s.storageErr("write", err)
	}

	return nil
}

func (s *Service) storageErr(op string, err error) error {
	s.logger.Printf("task storage %s failed for key %q: %v", op, s.key, err)
	return &StorageError{Op: op, Err: err}
}
