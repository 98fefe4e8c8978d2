package reactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickReturnsPhraseFromPool(t *testing.T) {
	p := NewPicker(10, 1)

	for _, token := range []string{"1", "2", "3", "4", "5", "6", "X"} {
		pool := Themes[token]
		require.NotEmpty(t, pool, token)

		got := p.Pick(token)
		assert.Contains(t, pool, got, token)
	}
}

func TestPickFallbackForUnknownToken(t *testing.T) {
	p := NewPicker(10, 1)
	assert.Equal(t, Fallback, p.Pick("7"))
	assert.Equal(t, Fallback, p.Pick(""))
}

func TestPickAvoidsRecentRepeats(t *testing.T) {
	pool := Themes["3"]
	require.Greater(t, len(pool), 3)

	// Cache smaller than the pool: consecutive picks must differ while the
	// previous phrase is still remembered.
	p := NewPicker(3, 42)
	prev := p.Pick("3")
	for i := 0; i < 20; i++ {
		got := p.Pick("3")
		assert.NotEqual(t, prev, got)
		prev = got
	}
}

func TestPickDegradesToRepeatsWhenPoolExhausted(t *testing.T) {
	// Cache larger than any pool: every phrase becomes "recent" and the
	// picker must still answer rather than spin.
	p := NewPicker(1000, 7)
	for i := 0; i < 50; i++ {
		assert.NotEmpty(t, p.Pick("6"))
	}
}

func TestNewPickerClampsCapacity(t *testing.T) {
	p := NewPicker(0, 1)
	assert.NotEmpty(t, p.Pick("1"))

	p = NewPicker(-5, 1)
	assert.NotEmpty(t, p.Pick("1"))
}
