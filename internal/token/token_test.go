package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siteoptz/capture-service/internal/token"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func TestGenerateLength(t *testing.T) {
	g := token.NewGenerator()

	for i := 0; i < 100; i++ {
		tok, err := g.Generate()
		assert.NoError(t, err)
		assert.Len(t, tok, token.Length)
	}
}

func TestGenerateAlphabet(t *testing.T) {
	g := token.NewGenerator()

	tok, err := g.Generate()
	assert.NoError(t, err)
	for _, c := range tok {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}

func TestGenerateNoObviousRepeats(t *testing.T) {
	g := token.NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok, err := g.Generate()
		assert.NoError(t, err)
		assert.False(t, seen[tok], "token %q generated twice in 1000 draws", tok)
		seen[tok] = true
	}
}
