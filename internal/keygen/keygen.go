// Package keygen generates random API keys for MCP_API_KEY.
package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Alphabet is the character set of generated keys.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength is the key length used when none is given.
const DefaultLength = 32

var ErrInvalidLength = errors.New("key length must be positive")

// Generate returns one key of the given length drawn uniformly from Alphabet.
func Generate(length int) (string, error) {
	return generate(rand.Reader, length)
}

// GenerateN returns count keys of the given length.
func GenerateN(count, length int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("key count must be positive, got %d", count)
	}
	keys := make([]string, 0, count)
	for range count {
		k, err := Generate(length)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func generate(r io.Reader, length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	n := big.NewInt(int64(len(Alphabet)))
	b := make([]byte, length)
	for i := range b {
		idx, err := rand.Int(r, n)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		b[i] = Alphabet[idx.Int64()]
	}
	return string(b), nil
}
