package fakefeed

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/utils"
	"github.com/MKhiriev/go-broadcast-datafeed/models"
)

type session struct {
	login        string
	refreshToken string
}

// sessionStore maps each live access token to its session. An access token
// belongs to exactly one refresh token and vice versa.
type sessionStore struct {
	signKey  string
	issuer   string
	duration time.Duration

	mu       sync.Mutex
	sessions map[string]session
}

func newSessionStore(signKey, issuer string, duration time.Duration) *sessionStore {
	return &sessionStore{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
		sessions: make(map[string]session),
	}
}

func (s *sessionStore) issue(login string) (models.Tokens, error) {
	token, err := utils.GenerateJWTToken(s.issuer, login, s.duration, s.signKey)
	if err != nil {
		return models.Tokens{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh := utils.NewID()

	s.mu.Lock()
	s.sessions[token] = session{login: login, refreshToken: refresh}
	s.mu.Unlock()

	return models.Tokens{Token: token, RefreshToken: refresh}, nil
}

// authenticate validates token and returns the login of its live session.
func (s *sessionStore) authenticate(token string) (string, error) {
	login, err := utils.ValidateJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	sess, ok := s.sessions[token]
	s.mu.Unlock()

	if !ok || sess.login != login {
		return "", ErrUnknownSession
	}
	return login, nil
}

// rotate replaces the session of req.Token with a new pair. The access token
// may already be expired; only the pairing is checked.
func (s *sessionStore) rotate(req models.RefreshRequest) (models.Tokens, error) {
	s.mu.Lock()
	sess, ok := s.sessions[req.Token]
	if !ok {
		s.mu.Unlock()
		return models.Tokens{}, ErrUnknownSession
	}
	if sess.refreshToken != req.RefreshToken {
		s.mu.Unlock()
		return models.Tokens{}, ErrRefreshMismatch
	}
	delete(s.sessions, req.Token)
	s.mu.Unlock()

	return s.issue(sess.login)
}

func (s *sessionStore) revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
