package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsReproducible(t *testing.T) {
	a := New(1)
	b := New(1)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Rand(), b.Rand())
	}
}

func TestZeroSeedSubstitutesDefault(t *testing.T) {
	a := New(0)
	b := New(DefaultSeed)
	for i := 0; i < 8; i++ {
		require.Equal(t, a.Rand(), b.Rand())
	}
}

func TestRandIsWithinUnitInterval(t *testing.T) {
	tw := New(42)
	for i := 0; i < 10000; i++ {
		v := tw.Rand()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	assert.NotEqual(t, a.Rand(), b.Rand())
}
