package dispatcher

import (
	"regexp"
	"strconv"
)

var (
	preferenceLocationsPattern = regexp.MustCompile(`(?:from|to)\s+([A-Za-z\s]+)`)
	preferenceDatesPattern     = regexp.MustCompile(`(?:on|in|around|during)\s+([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?(?:\s*-\s*\d{1,2}(?:st|nd|rd|th)?)?)`)
	preferencePricePattern     = regexp.MustCompile(`(?:under|below|around|about)\s+\$?(\d+)`)
)

// extractPreferences opportunistically harvests location, date, and price
// hints from the turn into the running preference set. Later turns overwrite
// earlier ones per key. Callers hold mu.
func (d *Dispatcher) extractPreferences(text string) {
	if matches := preferenceLocationsPattern.FindAllStringSubmatch(text, -1); matches != nil {
		locations := make([]string, 0, len(matches))
		for _, m := range matches {
			locations = append(locations, m[1])
		}
		d.preferences["locations"] = locations
	}

	if m := preferenceDatesPattern.FindStringSubmatch(text); m != nil {
		d.preferences["dates"] = m[1]
	}

	if m := preferencePricePattern.FindStringSubmatch(text); m != nil {
		if price, err := strconv.Atoi(m[1]); err == nil {
			d.preferences["max_price"] = price
		}
	}
}
