package user

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is an immutable, normalized e-mail address.
type Email struct {
	value string
}

// NewEmail normalizes and validates an e-mail address.
func NewEmail(email string) (*Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegex.MatchString(email) {
		return nil, NewInvalidEmailError(email)
	}
	return &Email{value: email}, nil
}

// Value returns the normalized address.
func (e Email) Value() string { return e.value }

// Equals compares two Email value objects.
func (e Email) Equals(other Email) bool { return e.value == other.value }

func (e Email) String() string { return e.value }

// Sex is a declared-gender code stored as a small integer.
type Sex uint8

const (
	SexMan Sex = iota
	SexWoman
	SexOther
)

var sexNames = map[Sex]string{
	SexMan:   "MAN",
	SexWoman: "WOMAN",
	SexOther: "OTHER",
}

func (s Sex) String() string {
	if name, ok := sexNames[s]; ok {
		return name
	}
	return sexNames[SexOther]
}

// Wire returns the small-integer persistence code.
func (s Sex) Wire() int { return int(s) }

// SexFromWire decodes a persisted code, defaulting to SexOther for
// codes this version does not know.
func SexFromWire(code int) Sex {
	s := Sex(code)
	if _, ok := sexNames[s]; !ok {
		return SexOther
	}
	return s
}
