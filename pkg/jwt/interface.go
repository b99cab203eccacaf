package jwt

import (
	"fmt"

	"insight-srv/pkg/scope"
)

// IManager defines the interface for JWT token generation and verification.
// Implementations are safe for concurrent use.
type IManager interface {
	GenerateToken(userID, email, role string) (string, error)
	VerifyToken(tokenString string) (*Claims, error)
	Verify(token string) (scope.Payload, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
	}, nil
}
