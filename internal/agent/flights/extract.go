package flights

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"rahalah/pkg/datemath"
)

// Params is the structured flight search request recovered from free text.
// Missing departure/arrival is a normal state handled with a clarification,
// not an error.
type Params struct {
	DepartureID  string `json:"departure_id,omitempty"`
	ArrivalID    string `json:"arrival_id,omitempty"`
	OutboundDate string `json:"outbound_date,omitempty"`
	ReturnDate   string `json:"return_date,omitempty"`
	FlightType   string `json:"flight_type"`
	MaxPrice     int    `json:"max_price"`
}

var (
	directRoutePattern = regexp.MustCompile(`\b([a-zA-Z]{3})\s*(?:to|-|>|→)\s*([a-zA-Z]{3})\b`)
	fromPhrasePattern  = regexp.MustCompile(`from\s+([a-zA-Z\s]+?)(?:\s+to\b|$)`)
	toPhrasePattern    = regexp.MustCompile(`to\s+([a-zA-Z\s]+)`)
	timeOffsetPattern  = regexp.MustCompile(`in\s+(\d+)\s+(days?|weeks?|months?)`)
	priceLimitPattern  = regexp.MustCompile(`under\s+\$?(\d+)`)
	returnDatePattern  = regexp.MustCompile(`return(?:ing)?\s+(?:on|in)\s+(\d+)\s+(days?|weeks?|months?)`)
)

// ExtractParams runs the flight extraction waterfall against text. Dates are
// resolved relative to now so callers (and tests) control the reference day.
//
// Route resolution tries, in order: a direct "CODE to CODE" token pair, the
// "from X to Y" phrase, and finally bare mentions of exactly two known
// airports in order of first appearance.
func ExtractParams(text string, now time.Time) Params {
	lower := strings.ToLower(text)
	params := Params{
		FlightType: FlightTypeOneWay,
		MaxPrice:   DefaultMaxPrice,
	}

	// Rule 1: direct airport-code pair, e.g. "DMM to RUH" or "DMM-RUH".
	if m := directRoutePattern.FindStringSubmatch(lower); m != nil {
		params.DepartureID = resolveAirport(m[1])
		params.ArrivalID = resolveAirport(m[2])
	}

	// Rule 2: "from X to Y" phrases, for fields rule 1 left unset.
	if params.DepartureID == "" || params.ArrivalID == "" {
		if m := fromPhrasePattern.FindStringSubmatch(lower); m != nil && params.DepartureID == "" {
			params.DepartureID = lookupAirportIn(strings.TrimSpace(m[1]))
		}
		if m := toPhrasePattern.FindStringSubmatch(lower); m != nil && params.ArrivalID == "" {
			params.ArrivalID = lookupAirportIn(strings.TrimSpace(m[1]))
		}
	}

	// Rule 3: exactly two known airports mentioned anywhere, first mention
	// is the departure.
	if params.DepartureID == "" || params.ArrivalID == "" {
		if mentions := airportMentions(lower); len(mentions) == 2 {
			params.DepartureID = mentions[0]
			params.ArrivalID = mentions[1]
		}
	}

	// Relative date markers.
	switch {
	case strings.Contains(lower, "tomorrow"):
		params.OutboundDate = datemath.FormatISO(now.AddDate(0, 0, 1))
	case strings.Contains(lower, "next week"):
		params.OutboundDate = datemath.FormatISO(now.AddDate(0, 0, datemath.DaysPerWeek))
	case strings.Contains(lower, "next month"):
		params.OutboundDate = datemath.FormatISO(now.AddDate(0, 0, datemath.DaysPerMonth))
	}

	// Explicit "in N days/weeks/months" offset wins over the markers.
	if m := timeOffsetPattern.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		params.OutboundDate = datemath.FormatISO(datemath.Offset(now, amount, m[2]))
	}

	if m := priceLimitPattern.FindStringSubmatch(lower); m != nil {
		params.MaxPrice, _ = strconv.Atoi(m[1])
	}

	// Round-trip detection and the optional "returning in N units" offset
	// from the outbound date.
	if strings.Contains(lower, "round trip") || strings.Contains(lower, "return") {
		params.FlightType = FlightTypeRoundTrip

		if m := returnDatePattern.FindStringSubmatch(lower); m != nil && params.OutboundDate != "" {
			outbound, err := time.Parse(datemath.DateFormatISO, params.OutboundDate)
			if err == nil {
				amount, _ := strconv.Atoi(m[1])
				params.ReturnDate = datemath.FormatISO(datemath.Offset(outbound, amount, m[2]))
			}
		}
	}

	return params
}

// resolveAirport maps a three-letter token to a known IATA code, accepting
// either the code itself or a table token. Unknown tokens resolve to "".
func resolveAirport(token string) string {
	upper := strings.ToUpper(token)
	for _, cc := range airportTable {
		if cc.iata == upper {
			return cc.iata
		}
	}
	lower := strings.ToLower(token)
	for _, cc := range airportTable {
		if cc.token == lower {
			return cc.iata
		}
	}
	return ""
}

// lookupAirportIn finds the first known airport token inside a phrase.
func lookupAirportIn(phrase string) string {
	for _, cc := range airportTable {
		if strings.Contains(phrase, cc.token) {
			return cc.iata
		}
	}
	return ""
}

// airportMentions returns the distinct airports mentioned in the text,
// ordered by first appearance.
func airportMentions(lower string) []string {
	type mention struct {
		iata  string
		index int
	}
	seen := make(map[string]int)
	for _, cc := range airportTable {
		idx := strings.Index(lower, cc.token)
		if idx < 0 {
			continue
		}
		if prev, ok := seen[cc.iata]; !ok || idx < prev {
			seen[cc.iata] = idx
		}
	}

	mentions := make([]mention, 0, len(seen))
	for iata, idx := range seen {
		mentions = append(mentions, mention{iata: iata, index: idx})
	}
	sort.Slice(mentions, func(i, j int) bool { return mentions[i].index < mentions[j].index })

	out := make([]string, len(mentions))
	for i, m := range mentions {
		out[i] = m.iata
	}
	return out
}

// MentionsAirport reports whether the text names any known airport or city.
func MentionsAirport(text string) bool {
	lower := strings.ToLower(text)
	for _, cc := range airportTable {
		if strings.Contains(lower, cc.token) {
			return true
		}
	}
	return false
}

// AirportName returns the city name registered for an IATA code, or the code
// itself when unknown. Used when phrasing replies.
func AirportName(code string) string {
	for _, cc := range airportTable {
		if cc.iata == code && len(cc.token) != 3 {
			return cc.token
		}
	}
	return code
}
