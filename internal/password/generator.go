package password

import (
	"errors"
	"strings"
)

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	Digits         = "0123456789"

	// SpecialChars is the special character set shared by the generator and
	// the strength evaluator.
	SpecialChars = "!@#$%^&*"

	Letters = UppercaseChars + LowercaseChars
)

var ErrInvalidLength = errors.New("password length must not be negative")

// Generator produces random passwords from a fixed alphabet.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator that draws from src. A nil src uses MathSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = MathSource{}
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(MathSource{})

// Generate returns a password of length characters using the default
// non-cryptographic source.
func Generate(length int, includeSpecials bool) (string, error) {
	return defaultGenerator.Generate(length, includeSpecials)
}

// Alphabet returns the candidate characters for a generated password.
func Alphabet(includeSpecials bool) string {
	if includeSpecials {
		return Letters + Digits + SpecialChars
	}
	return Letters + Digits
}

// Generate returns exactly length characters, each drawn independently and
// uniformly from Alphabet(includeSpecials). No character class is guaranteed
// to appear. A zero length yields an empty string.
func (g *Generator) Generate(length int, includeSpecials bool) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}

	chars := Alphabet(includeSpecials)

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(chars[g.src.IntN(len(chars))])
	}

	return sb.String(), nil
}
