package decant_test

import (
	"testing"

	"github.com/decantlabs/decant"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	t.Run("collapses space runs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b c", decant.NormalizeWhitespace("a   b \t c"))
	})

	t.Run("normalizes line endings", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\nb\nc", decant.NormalizeWhitespace("a\r\nb\rc"))
	})

	t.Run("caps blank line runs at one", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\n\nb", decant.NormalizeWhitespace("a\n\n\n\n\nb"))
	})

	t.Run("trims line edges", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\nb", decant.NormalizeWhitespace("  a  \n   b   "))
	})

	t.Run("replaces non-breaking spaces", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b", decant.NormalizeWhitespace("a\u00A0b"))
	})

	t.Run("removes zero-width characters", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ab", decant.NormalizeWhitespace("a\u200Bb\uFEFF"))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", decant.NormalizeWhitespace(""))
		assert.Equal(t, "", decant.NormalizeWhitespace("  \n\t\n  "))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			"a   b\r\n\n\n c\u00A0d",
			"  leading and trailing  ",
			"already\nnormal\n\ntext",
		}
		for _, in := range inputs {
			once := decant.NormalizeWhitespace(in)
			assert.Equal(t, once, decant.NormalizeWhitespace(once))
		}
	})
}
