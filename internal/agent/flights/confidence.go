package flights

import (
	"regexp"
	"strings"

	"rahalah/internal/agent"
)

var fromToPattern = regexp.MustCompile(`from\s+\w+\s+to\s+\w+`)

// Confidence scores how flight-like the request is: the "from X to Y"
// structure is the strongest signal, airport mentions count once, and
// keyword hits accumulate per keyword.
func (a *Agent) Confidence(text string) float64 {
	lower := strings.ToLower(text)

	confidence := 0.0

	if fromToPattern.MatchString(lower) {
		confidence += weightFromToPattern
	}

	for _, cc := range airportTable {
		if strings.Contains(lower, cc.token) {
			confidence += weightAirportMention
			break
		}
	}

	for _, keyword := range highConfidenceKeywords {
		if strings.Contains(lower, keyword) {
			confidence += weightHighKeyword
		}
	}

	for _, keyword := range mediumConfidenceKeywords {
		if strings.Contains(lower, keyword) {
			confidence += weightMediumKeyword
		}
	}

	return agent.ClampScore(confidence)
}
