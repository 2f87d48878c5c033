// Package session keeps independent Mandelbrot views for remote clients.
//
// Each [Session] wraps one [view.View] (and so one frame cache and one drag
// controller) behind its own mutex. Sessions expire after a period without
// use; a [Store] holds them and removes expired ones on [Store.Cleanup].
//
// # Usage
//
//	store := session.NewMemoryStore()
//	sess := session.New(view.New(800, 0), session.DefaultTTL)
//	store.Set(ctx, sess)
//
//	sess, err := store.Get(ctx, id)
//	if err != nil {
//	    // SESSION_NOT_FOUND for unknown or expired ids
//	}
//	sess.Do(func(v *view.View) error {
//	    v.SetDepth(50)
//	    return nil
//	})
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/mandelzoom/pkg/plane"
	"github.com/matzehuels/mandelzoom/pkg/view"
)

// DefaultTTL is the default idle lifetime of a session.
const DefaultTTL = 30 * time.Minute

// Session is one client's view.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	ttl       time.Duration
	expiresAt time.Time
	view      *view.View
}

// State is the JSON-facing snapshot of a session.
type State struct {
	ID       string       `json:"id"`
	Depth    int          `json:"depth"`
	Window   plane.Window `json:"window"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Dragging bool         `json:"dragging"`
}

// New creates a session around v with a fresh random ID.
func New(v *view.View, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ttl:       ttl,
		expiresAt: now.Add(ttl),
		view:      v,
	}
}

// Do runs fn with exclusive access to the view and extends the session's
// lifetime.
func (s *Session) Do(fn func(v *view.View) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt = time.Now().Add(s.ttl)
	return fn(s.view)
}

// State returns a snapshot of the view.
func (s *Session) State() State {
	var st State
	s.Do(func(v *view.View) error {
		st = stateOf(s.ID, v)
		return nil
	})
	return st
}

// StateOf snapshots v under the session's ID. Callers must already be
// inside Do.
func (s *Session) StateOf(v *view.View) State {
	return stateOf(s.ID, v)
}

func stateOf(id string, v *view.View) State {
	w, h := v.Size()
	return State{
		ID:       id,
		Depth:    v.Depth(),
		Window:   v.Window(),
		Width:    w,
		Height:   h,
		Dragging: v.Dragging(),
	}
}

// ExpiresAt returns when the session expires if left unused.
func (s *Session) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

// IsExpired reports whether the session expired at time now.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt())
}

// Store is the interface for session storage.
type Store interface {
	// Get returns the session with id. Unknown and expired sessions yield a
	// SESSION_NOT_FOUND error.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session, replacing any with the same ID.
	Set(ctx context.Context, s *Session) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions and returns how many were removed.
	Cleanup(ctx context.Context) (int, error)

	// Len returns the number of stored sessions.
	Len() int
}
