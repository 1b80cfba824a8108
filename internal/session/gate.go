// Package session holds the in-memory authentication gate: the current user,
// a loading flag, and login/logout over an injectable credential lookup.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// Failure messages returned in Result.Error.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgLoginFailed        = "Login failed. Please try again."
)

// State is a snapshot of the gate.
type State struct {
	CurrentUser *User
	IsLoading   bool
}

// Result is the outcome of a login attempt.
type Result struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Gate tracks one session. It is not guarded against overlapping Login
// calls: each runs to completion and the last success sets CurrentUser.
type Gate struct {
	lookup CredentialLookup
	delay  time.Duration

	mu      sync.Mutex
	current *User
	loading bool
}

// NewGate returns a logged-out gate. delay is waited before every lookup.
func NewGate(lookup CredentialLookup, delay time.Duration) *Gate {
	return &Gate{lookup: lookup, delay: delay}
}

// State returns a copy of the current state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := State{IsLoading: g.loading}
	if g.current != nil {
		u := *g.current
		st.CurrentUser = &u
	}
	return st
}

// Login checks the credentials. On failure CurrentUser is left as it was.
func (g *Gate) Login(ctx context.Context, email, password string) Result {
	g.setLoading(true)

	user, err := g.check(ctx, email, password)
	if err != nil {
		g.setLoading(false)
		if errors.Is(err, ErrInvalidCredentials) {
			return Result{Error: MsgInvalidCredentials}
		}
		return Result{Error: MsgLoginFailed}
	}

	safe := user.withoutPassword()
	g.mu.Lock()
	g.current = &safe
	g.loading = false
	g.mu.Unlock()

	out := safe
	return Result{Success: true, User: &out}
}

// Logout clears the current user. Nothing is persisted, so nothing else is cleared.
func (g *Gate) Logout() {
	g.mu.Lock()
	g.current = nil
	g.mu.Unlock()
}

func (g *Gate) check(ctx context.Context, email, password string) (user User, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("credential lookup panicked")
		}
	}()

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return User{}, ctx.Err()
		case <-timer.C:
		}
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	return g.lookup.Lookup(ctx, email, password)
}

func (g *Gate) setLoading(v bool) {
	g.mu.Lock()
	g.loading = v
	g.mu.Unlock()
}
