package scatter

import (
	stdmath "math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First draws of the all-zero seed, as float32 bit patterns.
var zeroSeedAngleBits = []uint32{
	0x400055e2, // 2.0052419
	0x3fb3d58c, // 1.4049544
	0x3e7c7ec5, // 0.24657734
	0x4082f8db,
	0x409c3bf2,
	0x3f267f17,
	0x3f8b765b,
	0x40bc169e,
	0x409d0644,
}

func TestChaChaAnglesZeroSeed(t *testing.T) {
	src := NewChaChaAngles([32]byte{})
	for i, want := range zeroSeedAngleBits {
		got := src.Angle()
		assert.Equalf(t, want, stdmath.Float32bits(got),
			"draw %d: got %v (%#08x), want %v", i, got, stdmath.Float32bits(got), stdmath.Float32frombits(want))
	}
}

func TestChaChaAnglesReset(t *testing.T) {
	src := NewChaChaAngles([32]byte{})
	first := []float32{src.Angle(), src.Angle(), src.Angle()}

	src.Reset()
	again := []float32{src.Angle(), src.Angle(), src.Angle()}
	assert.Equal(t, first, again)
}

func TestChaChaAnglesRange(t *testing.T) {
	var seed [32]byte
	seed[0] = 7
	src := NewChaChaAngles(seed)
	for i := 0; i < 10000; i++ {
		a := src.Angle()
		require.GreaterOrEqual(t, a, float32(0))
		require.Less(t, a, float32(2*stdmath.Pi))
	}
}

func TestChaChaAnglesSeedMatters(t *testing.T) {
	var seed [32]byte
	seed[31] = 1
	a := NewChaChaAngles([32]byte{}).Angle()
	b := NewChaChaAngles(seed).Angle()
	assert.NotEqual(t, a, b)
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed("")
	require.NoError(t, err)
	assert.Equal(t, [32]byte{}, seed)

	seed, err = ParseSeed(strings.Repeat("00", 31) + "ff")
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), seed[31])

	_, err = ParseSeed("abcd")
	assert.Error(t, err)

	_, err = ParseSeed(strings.Repeat("zz", 32))
	assert.Error(t, err)
}
