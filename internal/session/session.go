// Package session holds the state of one terminal widget instance: its
// identity, its output log and the settings used to render time values.
package session

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/google/uuid"
)

// Session is one widget instance. Several may live in the same process.
type Session struct {
	ID       string
	Prompt   string
	Location *time.Location
	Log      *Log

	now func() time.Time
}

// Option customizes a new Session.
type Option func(*Session)

// WithPrompt overrides the prompt label.
func WithPrompt(p string) Option { return func(s *Session) { s.Prompt = p } }

// WithLocation sets the time zone used for rendered times.
func WithLocation(loc *time.Location) Option { return func(s *Session) { s.Location = loc } }

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// New creates a session with a fresh ID and an empty log.
func New(opts ...Option) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Prompt:   DefaultPrompt(),
		Location: time.Local,
		Log:      &Log{},
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Now returns the current time in the session location.
func (s *Session) Now() time.Time { return s.now().In(s.Location) }

// In converts t into the session location.
func (s *Session) In(t time.Time) time.Time { return t.In(s.Location) }

// DefaultPrompt builds a "user@host:$" label from the environment.
func DefaultPrompt() string {
	name := "user"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("%s@%s:$", name, host)
}
