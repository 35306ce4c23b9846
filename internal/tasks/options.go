package tasks

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultKey is the storage entry holding the task collection.
	DefaultKey = "tasks"

	// DefaultDelay is the simulated latency added to every successful call.
	DefaultDelay = 500 * time.Millisecond
)

// Option configures a Service.
type Option func(*Service)

// WithKey sets the storage entry name.
func WithKey(key string) Option {
	return func(s *Service) { s.key = key }
}

// WithDelay sets the simulated latency. Zero disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

// WithSleeper replaces time.Sleep for the simulated latency. Nil keeps the default.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *Service) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithClock sets the source of creation timestamps. Nil keeps time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the source of task ids. Nil keeps UUIDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithLogger sets the logger used to report storage failures. Nil keeps the discard logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func defaults(s *Service) {
	s.key = DefaultKey
	s.delay = DefaultDelay
	s.sleep = time.Sleep
	s.now = time.Now
	s.newID = uuid.NewString
	s.logger = log.New(io.Discard, "", 0)
}
