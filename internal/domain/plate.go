package domain

import (
	"regexp"
	"strings"
)

// plateRegex is the canonical plate format: three letters, a hyphen, four digits.
var plateRegex = regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)

// NormalizePlate trims surrounding whitespace and uppercases ASCII letters.
// Non-ASCII runes are left untouched, so they still fail ValidPlate.
func NormalizePlate(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, strings.TrimSpace(raw))
}

// ValidPlate reports whether an already normalized plate matches the canonical format.
func ValidPlate(normalized string) bool {
	return plateRegex.MatchString(normalized)
}

// ParsePlate normalizes raw and validates the result.
// Returns ErrInvalidPlate for empty or malformed input.
func ParsePlate(raw string) (string, error) {
	plate := NormalizePlate(raw)
	if !ValidPlate(plate) {
		return "", ErrInvalidPlate
	}
	return plate, nil
}
