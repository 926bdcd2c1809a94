// Package token generates the short public identifiers used for quotes.
package token

import (
	"crypto/rand"
	"fmt"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Length of every generated token.
const Length = 8

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a random 8-character alphanumeric token. Tokens are not
// guaranteed unique; the store's unique index is the arbiter and callers
// retry on collision.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	out := make([]byte, Length)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}
