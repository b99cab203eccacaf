package scope

// Payload is the verified token content handed to request handlers.
type Payload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Subject   string `json:"sub"`
	JTI       string `json:"jti"`
	Issuer    string `json:"iss"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

// Manager verifies tokens into payloads.
type Manager interface {
	Verify(token string) (Payload, error)
}

type scopeKey struct{}
