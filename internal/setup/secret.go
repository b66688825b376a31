package setup

import (
	"github.com/cockroachdb/errors"

	"github.com/Han-16/kzgist/internal/field"
)

// InsecureRandomSecret draws a fresh non-zero secret. Only for tests and benchmarks.
func InsecureRandomSecret() (field.Element, error) {
	var s field.Element
	for s.IsZero() {
		if _, err := s.SetRandom(); err != nil {
			return field.Element{}, errors.Wrap(err, "draw setup secret")
		}
	}
	return s, nil
}

// SecretFromString parses a decimal (or 0x-prefixed hex) secret. Only for tests and benchmarks.
func SecretFromString(s string) (field.Element, error) {
	var e field.Element
	if _, err := e.SetString(s); err != nil {
		return field.Element{}, errors.Wrapf(err, "parse setup secret")
	}
	return e, nil
}
