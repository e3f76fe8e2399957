package hotels

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"rahalah/pkg/datemath"
)

// Params is the structured hotel search request recovered from free text.
// CheckIn/CheckOut always carry a value: the defaults (tomorrow, three
// nights) apply whenever no date is recognized.
type Params struct {
	Location  string   `json:"location,omitempty"`
	CheckIn   string   `json:"check_in"`
	CheckOut  string   `json:"check_out"`
	Guests    int      `json:"guests"`
	MaxPrice  int      `json:"max_price"`
	Amenities []string `json:"amenities"`
}

var (
	locationPhrasePattern = regexp.MustCompile(`(?:in|at|near|to)\s+([a-zA-Z\s]+?)(?:\.|\?|$|\s+for\b)`)
	dateRangePattern      = regexp.MustCompile(`from\s+([a-z]+\s+\d{1,2})\s+to\s+([a-z]+\s+\d{1,2})`)
	guestsPattern         = regexp.MustCompile(`(\d+)\s+(?:guests?|people|persons?)`)
	priceLimitPattern     = regexp.MustCompile(`under\s+\$?(\d+)`)
)

const monthDayLayout = "January 2, 2006"

// ExtractParams runs the hotel extraction waterfall against text relative
// to now.
//
// Location resolution tries, in order: an exact word match against the city
// table, a city-token substring anywhere, and a generic "in/at/near/to X"
// phrase used verbatim when no table entry matches.
func ExtractParams(text string, now time.Time) Params {
	lower := strings.ToLower(text)
	params := Params{
		Guests:    DefaultGuests,
		MaxPrice:  DefaultMaxPrice,
		Amenities: []string{},
	}

	// Rule 1: exact single-token city mention, e.g. "hotel dammam tomorrow".
	for _, word := range strings.Fields(lower) {
		if code, ok := cityCodeFor(word); ok {
			params.Location = code
			break
		}
	}

	// Rule 2: city-name substring anywhere in the text.
	if params.Location == "" {
		for _, cc := range cityTable {
			if strings.Contains(lower, cc.token) {
				params.Location = cc.code
				break
			}
		}
	}

	// Rule 3: generic location phrase; keep the raw phrase when it matches
	// no known city.
	if params.Location == "" {
		if m := locationPhrasePattern.FindStringSubmatch(lower); m != nil {
			phrase := strings.TrimSpace(m[1])
			for _, cc := range cityTable {
				if strings.Contains(phrase, cc.token) {
					params.Location = cc.code
					break
				}
			}
			if params.Location == "" {
				params.Location = phrase
			}
		}
	}

	checkIn, checkOut := resolveStayDates(lower, now)
	params.CheckIn = datemath.FormatISO(checkIn)
	params.CheckOut = datemath.FormatISO(checkOut)

	if m := guestsPattern.FindStringSubmatch(lower); m != nil {
		params.Guests, _ = strconv.Atoi(m[1])
	}

	if m := priceLimitPattern.FindStringSubmatch(lower); m != nil {
		params.MaxPrice, _ = strconv.Atoi(m[1])
	}

	for _, amenity := range Amenities {
		if strings.Contains(lower, strings.ToLower(amenity)) {
			params.Amenities = append(params.Amenities, amenity)
		}
	}

	return params
}

// resolveStayDates applies the default stay window, then relative markers,
// then an explicit "from <Month Day> to <Month Day>" range. Parse failures
// silently keep whatever was already resolved.
func resolveStayDates(lower string, now time.Time) (time.Time, time.Time) {
	checkIn := now.AddDate(0, 0, 1)
	checkOut := checkIn.AddDate(0, 0, DefaultNights)

	switch {
	case strings.Contains(lower, "tomorrow"):
		checkIn = now.AddDate(0, 0, 1)
		checkOut = checkIn.AddDate(0, 0, DefaultNights)
	case strings.Contains(lower, "tonight") || strings.Contains(lower, "today"):
		checkIn = now
		checkOut = now.AddDate(0, 0, 1)
	case strings.Contains(lower, "next week"):
		checkIn = now.AddDate(0, 0, datemath.DaysPerWeek)
		checkOut = checkIn.AddDate(0, 0, DefaultNights)
	case strings.Contains(lower, "weekend"):
		checkIn = datemath.NextSaturday(now)
		checkOut = checkIn.AddDate(0, 0, 2) // Saturday to Monday
	}

	if m := dateRangePattern.FindStringSubmatch(lower); m != nil {
		in, errIn := parseMonthDay(m[1], now.Year())
		out, errOut := parseMonthDay(m[2], now.Year())
		if errIn == nil && errOut == nil {
			if !out.After(in) {
				out = in.AddDate(0, 0, 1)
			}
			checkIn, checkOut = in, out
		}
	}

	return checkIn, checkOut
}

// parseMonthDay parses a lowercased "march 15" phrase assuming the given year.
func parseMonthDay(phrase string, year int) (time.Time, error) {
	// time.Parse wants the month capitalized ("March 15").
	phrase = strings.ToUpper(phrase[:1]) + phrase[1:]
	return time.Parse(monthDayLayout, phrase+", "+strconv.Itoa(year))
}

// cityCodeFor returns the city code for an exact token match.
func cityCodeFor(word string) (string, bool) {
	for _, cc := range cityTable {
		if cc.token == word {
			return cc.code, true
		}
	}
	return "", false
}

// CityName returns the city name registered for a code, or the code itself
// when unknown. Used when phrasing replies.
func CityName(code string) string {
	for _, cc := range cityTable {
		if cc.code == code && len(cc.token) != 3 {
			return cc.token
		}
	}
	return code
}
