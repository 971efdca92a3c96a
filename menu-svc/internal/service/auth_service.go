package service

import (
	"context"
	"crypto/subtle"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single shared back-office login. When PasswordHash
// is set it is a bcrypt hash and Password is ignored.
type AdminCredentials struct {
	Username     string
	Password     string
	PasswordHash string
}

type AuthService struct {
	creds    AdminCredentials
	sessions SessionStore
	ttl      time.Duration
}

func NewAuthService(creds AdminCredentials, sessions SessionStore, ttl time.Duration) *AuthService {
	return &AuthService{creds: creds, sessions: sessions, ttl: ttl}
}

// Login returns a new session id for a matching credential pair. Every
// mismatch yields ErrInvalidCredentials so callers cannot tell which half
// was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	if !s.passwordMatches(password) || !userOK {
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Create(ctx, sessionID, s.ttl); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// IsAdmin reports whether sessionID belongs to a live admin session. Store
// failures count as "not admin".
func (s *AuthService) IsAdmin(ctx context.Context, sessionID string) bool {
	if sessionID == "" {
		return false
	}
	ok, err := s.sessions.Exists(ctx, sessionID)
	if err != nil {
		log.Printf("[menu-svc] session lookup failed: %v", err)
		return false
	}
	return ok
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

func (s *AuthService) passwordMatches(password string) bool {
	if s.creds.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
}

var _ AuthServiceInterface = (*AuthService)(nil)
