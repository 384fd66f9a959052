package token

import (
	"crypto/rand"
	"fmt"
	"math/big"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/google/uuid"
)

const tokenDigits = 6

// Generator produces confirmation tokens and session ids. Tokens come from
// crypto/rand so they cannot be predicted from earlier observations; session
// ids are UUIDs with a stable prefix.
type Generator struct{}

// NewGenerator creates a new token Generator
func NewGenerator() coreport.TokenProvider {
	return &Generator{}
}

// GenerateToken returns a zero-padded 6-digit numeric code
func (g *Generator) GenerateToken() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < tokenDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return fmt.Sprintf("%0*d", tokenDigits, n), nil
}

// GenerateSessionID returns an opaque, globally unique session handle
func (g *Generator) GenerateSessionID() string {
	return "pay_" + uuid.NewString()
}
