package password

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label is the qualitative strength of a password.
type Label string

const (
	Weak     Label = "Weak"
	Moderate Label = "Moderate"
	Strong   Label = "Strong"
)

// MinLength is the length a password needs to earn the length point.
const MinLength = 8

const (
	HintLength      = "Password should be at least 8 characters long."
	HintMixedCase   = "Include both uppercase and lowercase letters."
	HintDigit       = "Include at least one digit (0-9)."
	HintSpecial     = "Include at least one special character (!@#$%^&*)."
	HintCommonWords = "Avoid using common words or sequences."
)

var commonWords = [...]string{"password", "123456", "qwerty", "admin", "letmein"}

// CommonWords returns a copy of the denylisted substrings.
func CommonWords() []string {
	return append([]string(nil), commonWords[:]...)
}

// Result is the outcome of Evaluate. Hints follow the order in which the
// criteria are checked and is never nil.
type Result struct {
	Score int
	Label Label
	Hints []string
}

// Evaluate scores password against the length, case, digit, special character
// and common word rules. Any input is valid, including the empty string.
func Evaluate(password string) Result {
	score := 0
	hints := make([]string, 0, 5)

	if utf8.RuneCountInString(password) >= MinLength {
		score++
	} else {
		hints = append(hints, HintLength)
	}

	if hasUpper(password) && hasLower(password) {
		score++
	} else {
		hints = append(hints, HintMixedCase)
	}

	if strings.IndexFunc(password, unicode.IsDigit) >= 0 {
		score++
	} else {
		hints = append(hints, HintDigit)
	}

	if strings.ContainsAny(password, SpecialChars) {
		score++
	} else {
		hints = append(hints, HintSpecial)
	}

	if containsCommonWord(password) {
		score--
		hints = append(hints, HintCommonWords)
	}

	return Result{
		Score: score,
		Label: labelFor(score),
		Hints: hints,
	}
}

// labelFor maps a score onto the Weak/Moderate/Strong bands. The rules above
// cap the score at 4, so Strong is currently unreachable.
func labelFor(score int) Label {
	switch {
	case score <= 2:
		return Weak
	case score <= 4:
		return Moderate
	default:
		return Strong
	}
}

func hasUpper(s string) bool {
	return strings.ContainsAny(s, UppercaseChars)
}

func hasLower(s string) bool {
	return strings.ContainsAny(s, LowercaseChars)
}

func containsCommonWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range commonWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
