package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	mathrand "math/rand/v2"
)

var ErrInvalidBound = errors.New("random bound must be positive")

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// MathSource draws from a seeded math/rand generator. It is not suitable
// for passwords that protect anything; use it for reproducible output.
type MathSource struct {
	r *mathrand.Rand
}

// NewMathSource returns a deterministic Source for the given seed.
func NewMathSource(seed uint64) *MathSource {
	return &MathSource{r: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *MathSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	return s.r.IntN(n), nil
}
