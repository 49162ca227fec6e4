package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fabriciobonjorno/ParkingControl/internal/domain"
)

func at(d time.Duration) *time.Time {
	t := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC).Add(d)
	return &t
}

func TestFormatDuration(t *testing.T) {
	start := *at(0)
	cases := []struct {
		name string
		left *time.Time
		want string
	}{
		{"same instant", at(0), "1 minuto"},
		{"thirty seconds rounds up to minimum", at(30 * time.Second), "1 minuto"},
		{"exactly one minute", at(time.Minute), "1 minuto"},
		{"five minutes", at(5 * time.Minute), "5 minutos"},
		{"partial minute rounds up", at(3*time.Minute + 30*time.Second), "4 minutos"},
		{"fifty nine minutes", at(59 * time.Minute), "59 minutos"},
		{"one hour", at(time.Hour), "1 hora"},
		{"one hour and one second", at(time.Hour + time.Second), "1 hora e 1 minuto"},
		{"ninety minutes", at(90 * time.Minute), "1 hora e 30 minutos"},
		{"two hours", at(2 * time.Hour), "2 horas"},
		{"two hours one minute", at(2*time.Hour + time.Minute), "2 horas e 1 minuto"},
		{"left before start clamps", at(-time.Hour), "1 minuto"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// now is far in the future to prove leftAt takes precedence.
			got := domain.FormatDuration(start, tc.left, start.Add(48*time.Hour))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatDuration_StillParkedUsesNow(t *testing.T) {
	start := *at(0)

	assert.Equal(t, "1 minuto", domain.FormatDuration(start, nil, start))
	assert.Equal(t, "30 minutos", domain.FormatDuration(start, nil, start.Add(30*time.Minute)))
	assert.Equal(t, "3 horas", domain.FormatDuration(start, nil, start.Add(3*time.Hour)))
}

func TestFormatDuration_ZeroStartIsMinimum(t *testing.T) {
	assert.Equal(t, "1 minuto", domain.FormatDuration(time.Time{}, nil, time.Now()))
}
