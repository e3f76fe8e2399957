// Package datemath implements the travel assistant's date arithmetic.
//
// Offsets are fixed approximations: a month is always 30 days, a week always
// 7. Downstream consumers assume these constants, so this is intentionally
// not calendar math.
package datemath

import (
	"strings"
	"time"
)

// DateFormatISO is the wire format for all extracted dates.
const DateFormatISO = "2006-01-02"

// Day offsets per unit.
const (
	DaysPerWeek  = 7
	DaysPerMonth = 30
)

// Offset returns base shifted by amount units. Unit is matched by prefix so
// both singular and plural forms ("day", "days") resolve. Unknown units
// return base unchanged.
func Offset(base time.Time, amount int, unit string) time.Time {
	switch {
	case strings.HasPrefix(unit, "day"):
		return base.AddDate(0, 0, amount)
	case strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*DaysPerWeek)
	case strings.HasPrefix(unit, "month"):
		return base.AddDate(0, 0, amount*DaysPerMonth)
	}
	return base
}

// NextSaturday returns the upcoming Saturday strictly after base's day when
// base itself is a Saturday: (5 - weekday) mod 7, with 0 mapped to 7.
func NextSaturday(base time.Time) time.Time {
	// Go weekday: Sunday=0 ... Saturday=6. Shift to Monday=0 so Saturday
	// sits at index 5.
	weekday := (int(base.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	days := (5 - weekday) % 7
	if days < 0 {
		days += 7
	}
	if days == 0 {
		days = 7
	}
	return base.AddDate(0, 0, days)
}

// FormatISO renders t in the assistant's wire date format.
func FormatISO(t time.Time) string {
	return t.Format(DateFormatISO)
}
