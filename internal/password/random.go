package password

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// Source picks a uniform random index in [0, n). Implementations must be safe
// for concurrent use.
type Source interface {
	IntN(n int) int
}

// MathSource draws from the auto-seeded math/rand/v2 generator. It is fast and
// unpredictable enough for casual use but is not a cryptographic source.
type MathSource struct{}

// IntN returns a pseudo-random int in [0, n).
func (MathSource) IntN(n int) int {
	return rand.Intn(n)
}

// CryptoSource draws from crypto/rand. Use it when generated passwords must be
// unpredictable to an attacker.
type CryptoSource struct{}

// IntN returns a uniform random int in [0, n) read from crypto/rand.
func (CryptoSource) IntN(n int) int {
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("password: reading crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}

// SourceByName maps a configuration value to a Source. Unknown names fall back
// to MathSource.
func SourceByName(name string) Source {
	if name == "crypto" {
		return CryptoSource{}
	}
	return MathSource{}
}
