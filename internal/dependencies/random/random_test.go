package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_String(t *testing.T) {
	r := New()
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	for range 50 {
		s := r.String(6, alphabet)
		assert.Len(t, s, 6)
		for _, c := range s {
			assert.True(t, strings.ContainsRune(alphabet, c), "unexpected char %q", c)
		}
	}
}

func TestCrypto_StringEdgeCases(t *testing.T) {
	r := New()

	assert.Equal(t, "", r.String(0, "AB"))
	assert.Equal(t, "", r.String(4, ""))
	assert.Equal(t, "AAAA", r.String(4, "A"))
}
