package jwt

import (
	"errors"
	"fmt"
	"seatpos/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims represents the part of the remote service's access token the client reads.
// The signature is never checked here, the remote service does that on every call.
type Claims struct {
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
	BranchID string `json:"branchId,omitempty"`
	jwt.RegisteredClaims
}

// JWT inspects tokens issued by the remote service.
type JWT interface {
	Inspect(tokenString string) (*Claims, error)
	ExpiresWithin(tokenString string, now time.Time) bool
}

// Service handles JWT operations
type Service struct {
	parser *jwt.Parser
	skew   time.Duration
}

// New creates a new JWT service
func New(cfg *config.Config) JWT {
	return &Service{
		parser: jwt.NewParser(),
		skew:   time.Duration(cfg.Backend.RefreshSkewSeconds) * time.Second,
	}
}

// Inspect decodes the claims of a token without verifying its signature.
func (s *Service) Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}

	_, _, err := s.parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ExpiresAt == nil {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExpiresWithin reports whether the token expires before now plus the configured skew.
// Tokens that cannot be read are reported as expiring so the caller refreshes them.
func (s *Service) ExpiresWithin(tokenString string, now time.Time) bool {
	claims, err := s.Inspect(tokenString)
	if err != nil {
		return true
	}

	return !claims.ExpiresAt.After(now.Add(s.skew))
}
