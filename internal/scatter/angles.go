package scatter

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/rand/v2"
)

const tau = 2 * math.Pi

// AngleSource yields rotation angles in [0, 2π). Reset restarts the sequence.
type AngleSource interface {
	Reset()
	Angle() float32
}

// ChaChaAngles draws angles from a ChaCha8 stream with a fixed seed, so the
// same seed always yields the same sequence.
type ChaChaAngles struct {
	seed [32]byte
	rng  *rand.Rand
}

// NewChaChaAngles returns a source seeded with seed.
func NewChaChaAngles(seed [32]byte) *ChaChaAngles {
	s := &ChaChaAngles{seed: seed}
	s.Reset()
	return s
}

// Reset reseeds the stream.
func (s *ChaChaAngles) Reset() {
	s.rng = rand.New(rand.NewChaCha8(s.seed))
}

// Angle returns the next angle.
func (s *ChaChaAngles) Angle() float32 {
	a := float32(s.rng.Float64() * tau)
	// Float64 is below 1, but the product can round up to 2π in float32.
	if a >= float32(tau) {
		return 0
	}
	return a
}

// ParseSeed decodes a 64 character hex string. An empty string is the zero
// seed.
func ParseSeed(s string) ([32]byte, error) {
	var seed [32]byte
	if s == "" {
		return seed, nil
	}
	if len(s) != hex.EncodedLen(len(seed)) {
		return seed, fmt.Errorf("seed must be %d hex characters, got %d", hex.EncodedLen(len(seed)), len(s))
	}
	if _, err := hex.Decode(seed[:], []byte(s)); err != nil {
		return seed, fmt.Errorf("seed: %w", err)
	}
	return seed, nil
}
