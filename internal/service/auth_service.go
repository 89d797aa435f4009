package service

import (
	"errors"

	"github.com/TimKirathe/wonderland-api/internal/auth"
)

// AuthService authenticates the single env-provisioned staff account for the
// read-only admin console. There is no user table and no registration.
type AuthService struct {
	email     string
	passHash  string
	jwtSecret string
}

// NewAuthService hashes the configured staff password at boot. Returns a
// disabled service when no account is configured.
func NewAuthService(email, password, jwtSecret string) (*AuthService, error) {
	s := &AuthService{email: email, jwtSecret: jwtSecret}
	if email == "" || password == "" {
		return s, nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	s.passHash = hash
	return s, nil
}

// Enabled reports whether a staff account is configured.
func (s *AuthService) Enabled() bool {
	return s.email != "" && s.passHash != ""
}

// Login checks the staff credentials and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	if !s.Enabled() {
		return "", errors.New("staff console is not configured")
	}
	if email != s.email || !auth.CheckPassword(password, s.passHash) {
		return "", errors.New("invalid credentials")
	}
	return auth.GenerateToken(s.jwtSecret, s.email)
}
