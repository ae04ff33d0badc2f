package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const defaultTokenBytes = 12

// Generator creates opaque tokens that are safe inside object keys and URLs.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct {
	size int
}

func NewRandomGenerator() *RandomGenerator {
	return NewRandomGeneratorSize(defaultTokenBytes)
}

// NewRandomGeneratorSize returns a generator producing 2*size hex characters.
func NewRandomGeneratorSize(size int) *RandomGenerator {
	if size < 1 {
		size = defaultTokenBytes
	}
	return &RandomGenerator{size: size}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, g.size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
