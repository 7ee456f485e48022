package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned when a presented write token does not match.
var ErrInvalidToken = errors.New("invalid or missing token")

// Service guards mutating operations behind a shared write token. The token
// itself is never kept; only its bcrypt hash is.
type Service struct {
	tokenHash []byte
}

// New creates an auth service from a bcrypt hash of the write token.
// An empty hash disables authentication (open instance, e.g. local dev).
func New(tokenHash string) *Service {
	return &Service{tokenHash: []byte(tokenHash)}
}

// NewFromToken creates an auth service by hashing a plaintext token.
func NewFromToken(token string) (*Service, error) {
	if token == "" {
		return New(""), nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{tokenHash: hash}, nil
}

// Enabled reports whether a write token is configured.
func (s *Service) Enabled() bool {
	return len(s.tokenHash) > 0
}

// Verify checks a presented token against the configured hash.
func (s *Service) Verify(token string) error {
	if !s.Enabled() {
		return nil
	}
	if token == "" {
		return ErrInvalidToken
	}
	if err := bcrypt.CompareHashAndPassword(s.tokenHash, []byte(token)); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Enabled() bool
	Verify(token string) error
}

var _ ServiceInterface = (*Service)(nil)
