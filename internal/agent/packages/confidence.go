package packages

import (
	"strings"

	"rahalah/internal/agent"
	"rahalah/internal/agent/flights"
)

// Confidence scores the request as a package inquiry. Explicit package
// vocabulary and mentioning both the flight and hotel domains are the
// strongest signals; a known city adds a small bonus once.
func (a *Agent) Confidence(text string) float64 {
	lower := strings.ToLower(text)

	confidence := 0.0

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

	if containsAny(lower, flightIndicators) && containsAny(lower, hotelIndicators) {
		confidence += weightBothDomains
	}

	if flights.MentionsAirport(lower) {
		confidence += weightCityMention
	}

	return agent.ClampScore(confidence)
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
