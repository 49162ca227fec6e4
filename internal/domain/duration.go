package domain

import (
	"math"
	"strconv"
	"time"
)

// MinimumMinutes is the shortest duration ever reported. A vehicle that stayed
// a few seconds is billed and displayed as one minute.
const MinimumMinutes = 1

// FormatDuration renders the time a vehicle spent (or has been spending) in the
// lot, e.g. "5 minutos", "1 hora", "2 horas e 1 minuto".
//
// The end of the interval is leftAt when set, otherwise now. Partial minutes
// round up. A zero startedAt yields the minimum duration.
func FormatDuration(startedAt time.Time, leftAt *time.Time, now time.Time) string {
	if startedAt.IsZero() {
		return countUnit(MinimumMinutes, "minuto", "minutos")
	}

	end := now
	if leftAt != nil {
		end = *leftAt
	}

	minutes := int(math.Ceil(end.Sub(startedAt).Minutes()))
	if minutes < MinimumMinutes {
		minutes = MinimumMinutes
	}

	hours, rest := minutes/60, minutes%60
	switch {
	case hours == 0:
		return countUnit(rest, "minuto", "minutos")
	case rest == 0:
		return countUnit(hours, "hora", "horas")
	default:
		return countUnit(hours, "hora", "horas") + " e " + countUnit(rest, "minuto", "minutos")
	}
}

func countUnit(n int, singular, plural string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
