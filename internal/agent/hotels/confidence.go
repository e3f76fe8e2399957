package hotels

import (
	"regexp"
	"strings"

	"rahalah/internal/agent"
)

var hotelInPattern = regexp.MustCompile(`(?:hotel|room|accommodation|stay)(?:\s+in|\s+at|\s+near)\s+\w+`)

// Confidence scores how hotel-like the request is. A direct keyword-city
// pairing ("hotel dammam") is the strongest signal, followed by the
// "hotel in X" phrase; keyword hits accumulate per keyword.
func (a *Agent) Confidence(text string) float64 {
	lower := strings.ToLower(text)

	confidence := 0.0

	if hotelInPattern.MatchString(lower) {
		confidence += weightHotelInPattern
	}

	if hasKeywordCityPair(lower) {
		confidence += weightKeywordCityPair
	}

	for _, cc := range cityTable {
		if strings.Contains(lower, cc.token) {
			confidence += weightCityMention
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

// hasKeywordCityPair reports an adjacent keyword-city mention in either
// order, e.g. "hotel dammam" or "dammam hotel".
func hasKeywordCityPair(lower string) bool {
	for _, cc := range cityTable {
		for _, keyword := range highConfidenceKeywords {
			if strings.Contains(lower, keyword+" "+cc.token) ||
				strings.Contains(lower, cc.token+" "+keyword) {
				return true
			}
		}
	}
	return false
}
