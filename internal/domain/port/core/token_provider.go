package core

// TokenProvider produces the secrets that gate payment confirmation.
// Tokens are scoped to a session, so collisions across concurrent payments are
// acceptable; session ids must never collide within a token validity window.
type TokenProvider interface {
	// GenerateToken returns a zero-padded 6-digit numeric code
	GenerateToken() (string, error)
	// GenerateSessionID returns an opaque, globally unique session handle
	GenerateSessionID() string
}
