package general

import (
	"strings"

	"rahalah/internal/agent"
)

// Confidence scores the request as general conversation. Greetings dominate;
// travel keywords, destination mentions, and activity mentions each add a
// small bonus at most once per category.
func (a *Agent) Confidence(text string) float64 {
	lower := strings.ToLower(text)

	confidence := 0.0

	for _, keyword := range greetingKeywords {
		if strings.Contains(lower, keyword) {
			confidence += weightGreeting
			break
		}
	}

	for _, keyword := range travelKeywords {
		if strings.Contains(lower, keyword) {
			confidence += weightCategoryHit
			break
		}
	}

	for _, destination := range destinations {
		if strings.Contains(lower, strings.ToLower(destination)) {
			confidence += weightCategoryHit
			break
		}
	}

	for _, activity := range activities {
		if strings.Contains(lower, activity) {
			confidence += weightCategoryHit
			break
		}
	}

	if confidence < confidenceFloor {
		confidence = confidenceFloor
	}

	return agent.ClampScore(confidence)
}
