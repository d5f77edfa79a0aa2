package dates

import (
	"strings"
	"time"
)

// Layout es la representación canónica de fecha (sin hora ni zona horaria).
// Todas las comparaciones de calendario del sistema pasan por este formato
// para evitar corrimientos por timezone.
const Layout = "2006-01-02"

// Canonical devuelve la fecha en formato YYYY-MM-DD, descartando la hora.
func Canonical(t time.Time) string {
	return t.Format(Layout)
}

// ParseCanonical parsea una fecha canónica. Cualquier otra cosa es error.
func ParseCanonical(s string) (time.Time, error) {
	return time.Parse(Layout, strings.TrimSpace(s))
}

// StartOfDay normaliza a medianoche UTC del día civil de t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween cuenta días civiles completos entre from y to (to - from).
// Puede ser negativo si to es anterior a from.
func DaysBetween(from, to time.Time) int {
	f := StartOfDay(from)
	t := StartOfDay(to)
	return int(t.Sub(f).Hours() / 24)
}

// AddDays suma n días civiles manteniendo la normalización a medianoche UTC.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}
