package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
)

func TestNormalizePlate(t *testing.T) {
	for _, raw := range []string{"ABC-1234", "abc-1234", "AbC-1234", "  abc-1234  ", "\tABC-1234\n"} {
		assert.Equal(t, "ABC-1234", domain.NormalizePlate(raw), "raw %q", raw)
	}
}

func TestNormalizePlate_LeavesNonASCIIAlone(t *testing.T) {
	assert.Equal(t, "ÇBC-1234", domain.NormalizePlate("Çbc-1234"))
}

func TestParsePlate_Valid(t *testing.T) {
	got, err := domain.ParsePlate("  abc-1234  ")

	require.NoError(t, err)
	assert.Equal(t, "ABC-1234", got)
}

func TestParsePlate_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing hyphen":         "ABC1234",
		"too few letters":        "AB-1234",
		"too many letters":       "ABCD-1234",
		"too few digits":         "ABC-123",
		"too many digits":        "ABC-12345",
		"empty":                  "",
		"whitespace only":        "   ",
		"random text":            "invalid",
		"digits in letter slots": "123-1234",
		"letters in digit slots": "ABC-ABCD",
		"inner whitespace":       "ABC -1234",
		"trailing garbage":       "ABC-1234X",
		"non-ascii letter":       "ÇBC-1234",
		"unicode digits":         "ABC-١٢٣٤",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := domain.ParsePlate(raw)

			assert.ErrorIs(t, err, domain.ErrInvalidPlate)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
