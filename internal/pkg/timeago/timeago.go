package timeago

import (
	"fmt"
	"time"
)

// Format returns a Spanish human-relative description of how long ago t was,
// measured against now ("hace 5 minutos", "hace 1 día", "hace 2 años").
func Format(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "hace menos de 1 minuto"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minuto", "s")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hora", "s")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24), "día", "s")
	case diff < 12*30*24*time.Hour:
		return plural(int(diff.Hours()/(24*30)), "mes", "es")
	default:
		return plural(int(diff.Hours()/(24*365)), "año", "s")
	}
}

func plural(n int, unit, suffix string) string {
	if n != 1 {
		unit += suffix
	}
	return fmt.Sprintf("hace %d %s", n, unit)
}
