package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash32_Deterministic(t *testing.T) {
	assert.Equal(t, Hash32("profil", "main"), Hash32("profil", "main"))
	assert.NotEqual(t, Hash32("profil", "main"), Hash32("profil", "calm"))
}

func TestHash32_PartBoundariesMatter(t *testing.T) {
	assert.NotEqual(t, Hash32("ab", "c"), Hash32("a", "bc"))
	assert.NotEqual(t, Hash32("abc"), Hash32("ab", "c"))
}

func TestHash32_EmptyInput(t *testing.T) {
	assert.Equal(t, uint32(2166136261), Hash32())
	assert.Equal(t, Hash32(""), Hash32(""))
}

func TestRNG_SameSeedSameStream(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "streams diverged at draw %d", i)
	}
}

func TestRNG_Float64InHalfOpenUnitInterval(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestRNG_IntnStaysInRange(t *testing.T) {
	r := NewRNG(123)
	for i := 0; i < 1000; i++ {
		v := r.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}

func TestRNG_DifferentSeedsDiffer(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	assert.False(t, same)
}
