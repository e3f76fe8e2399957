package datemath_test

import (
	"testing"
	"time"

	"rahalah/pkg/datemath"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOffset(t *testing.T) {
	base := date(2026, time.March, 10)

	tests := []struct {
		name   string
		amount int
		unit   string
		want   time.Time
	}{
		{"One Day", 1, "day", date(2026, time.March, 11)},
		{"Plural Days", 3, "days", date(2026, time.March, 13)},
		{"One Week", 1, "week", date(2026, time.March, 17)},
		{"Two Weeks", 2, "weeks", date(2026, time.March, 24)},
		{"Month Is Thirty Days", 1, "month", date(2026, time.April, 9)},
		{"Two Months", 2, "months", date(2026, time.May, 9)},
		{"Unknown Unit", 4, "fortnight", base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.Offset(base, tt.amount, tt.unit)
			if !got.Equal(tt.want) {
				t.Errorf("Offset(%d %s) = %s, want %s", tt.amount, tt.unit,
					got.Format(datemath.DateFormatISO), tt.want.Format(datemath.DateFormatISO))
			}
		})
	}
}

func TestNextSaturday(t *testing.T) {
	tests := []struct {
		name string
		base time.Time
		want time.Time
	}{
		// 2026-03-12 is a Thursday; the next Saturday is two days out.
		{"From Thursday", date(2026, time.March, 12), date(2026, time.March, 14)},
		{"From Monday", date(2026, time.March, 9), date(2026, time.March, 14)},
		{"From Friday", date(2026, time.March, 13), date(2026, time.March, 14)},
		// A Saturday resolves to the following Saturday, never today.
		{"From Saturday", date(2026, time.March, 14), date(2026, time.March, 21)},
		{"From Sunday", date(2026, time.March, 15), date(2026, time.March, 21)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.NextSaturday(tt.base)
			if !got.Equal(tt.want) {
				t.Errorf("NextSaturday(%s %s) = %s, want %s",
					tt.base.Weekday(), datemath.FormatISO(tt.base),
					datemath.FormatISO(got), datemath.FormatISO(tt.want))
			}
			if got.Weekday() != time.Saturday {
				t.Errorf("NextSaturday returned a %s", got.Weekday())
			}
		})
	}
}
