package state

import (
	"context"
	"sync"

	"authflow/internal/models"

	"go.uber.org/zap"
)

// LoginSubmitter is the typed login service the state holder drives.
type LoginSubmitter interface {
	SubmitLogin(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// Snapshot is an immutable copy of the holder state handed to observers.
// Exactly one of LastResponse/LastError is set once a submission resolved.
type Snapshot struct {
	Email        string
	Password     string
	LastResponse *models.LoginResponse
	LastError    string
}

// LoginState holds the user-entered credentials and the outcome of the most
// recently completed submission. Submit is fire-and-forget: it returns
// immediately and the outcome is applied when the network round trip
// finishes. Overlapping submissions are not coordinated; whichever completion
// arrives last overwrites the outcome fields.
type LoginState struct {
	mu  sync.Mutex
	svc LoginSubmitter
	log *zap.SugaredLogger

	email        string
	password     string
	lastResponse *models.LoginResponse
	lastError    string

	subscribers []func(Snapshot)
}

// NewLoginState creates a state holder backed by the given login service.
func NewLoginState(svc LoginSubmitter, log *zap.SugaredLogger) *LoginState {
	return &LoginState{
		svc: svc,
		log: log,
	}
}

// SetEmail updates the email input field.
func (s *LoginState) SetEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.email = email
}

// SetPassword updates the password input field.
func (s *LoginState) SetPassword(password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.password = password
}

// Subscribe registers a callback invoked after every completed submission.
// Callbacks run on the completion goroutine, outside the state lock.
func (s *LoginState) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Snapshot returns a copy of the current state.
func (s *LoginState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Submit builds a request from the current fields and hands it to the login
// service on a new goroutine. The fields are passed through as-is; no
// client-side validation is performed.
func (s *LoginState) Submit() {
	s.mu.Lock()
	req := models.LoginRequest{
		Email:    s.email,
		Password: s.password,
	}
	s.mu.Unlock()

	go func() {
		resp, err := s.svc.SubmitLogin(context.Background(), req)
		s.apply(resp, err)
	}()
}

// apply stores the outcome and notifies subscribers.
func (s *LoginState) apply(resp *models.LoginResponse, err error) {
	s.mu.Lock()
	if err != nil {
		s.log.Errorw("login failed", "error", err)
		s.lastResponse = nil
		s.lastError = err.Error()
	} else {
		s.log.Infow("login succeeded")
		s.lastResponse = resp
		s.lastError = ""
	}

	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *LoginState) snapshotLocked() Snapshot {
	snap := Snapshot{
		Email:     s.email,
		Password:  s.password,
		LastError: s.lastError,
	}
	if s.lastResponse != nil {
		resp := *s.lastResponse
		snap.LastResponse = &resp
	}
	return snap
}
