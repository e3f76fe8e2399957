package general

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"rahalah/internal/agent"
)

var (
	destinationPattern = regexp.MustCompile(`(?:visit|go to|travel to|about)\s+([a-zA-Z\s]+)(?:\.|\?|$)`)
	activityPattern    = regexp.MustCompile(`(?:do|activities|things to do)\s+in\s+([a-zA-Z\s]+)(?:\.|\?|$)`)
)

// Handle classifies the request as a greeting, a destination inquiry, an
// activity inquiry, or a generic travel question, and answers with canned
// prose. Always KindText.
func (a *Agent) Handle(ctx context.Context, text string, reqContext map[string]any) (agent.Reply, error) {
	for k, v := range reqContext {
		a.context[k] = v
	}

	lower := strings.ToLower(text)

	for _, keyword := range greetingTriggers {
		if strings.Contains(lower, keyword) {
			return agent.Reply{
				Content: greetingResponses[a.rng.Intn(len(greetingResponses))],
				Kind:    agent.KindText,
			}, nil
		}
	}

	if m := destinationPattern.FindStringSubmatch(lower); m != nil {
		destination := agent.TitleCase(strings.TrimSpace(m[1]))
		a.l.Infof(ctx, "general: destination inquiry for %s", destination)
		return agent.Reply{Content: destinationInfo(destination), Kind: agent.KindText}, nil
	}

	if m := activityPattern.FindStringSubmatch(lower); m != nil {
		location := agent.TitleCase(strings.TrimSpace(m[1]))
		a.l.Infof(ctx, "general: activity inquiry for %s", location)
		return agent.Reply{Content: a.activityInfo(location), Kind: agent.KindText}, nil
	}

	return agent.Reply{
		Content: "I can help you plan your perfect trip! I can search for flights, find hotels, recommend destinations, and provide travel tips. What specific aspect of your journey can I assist with today?",
		Kind:    agent.KindText,
	}, nil
}

// destinationInfo writes a short blurb about a destination, flavored by a
// rough regional grouping.
func destinationInfo(destination string) string {
	info := fmt.Sprintf("**%s** is a wonderful travel destination! ", destination)

	switch destination {
	case "Paris", "Rome", "Barcelona":
		info += "Known for its stunning architecture, world-class museums, and delicious cuisine. "
		info += "It's perfect for cultural exploration, romantic getaways, and food enthusiasts."
	case "Dubai", "Riyadh", "Jeddah":
		info += "A blend of modern luxury and rich cultural heritage. "
		info += "You'll find impressive skyscrapers, traditional markets, and excellent shopping opportunities."
	case "Bangkok", "Tokyo", "Singapore":
		info += "An exciting mix of ancient traditions and cutting-edge modernity. "
		info += "Famous for its vibrant street life, unique cuisine, and friendly locals."
	default:
		info += "A great choice for travelers! It offers a unique blend of experiences for all types of visitors. "
		info += "Would you like me to help you find flights or hotels for your trip there?"
	}

	return info
}

// activityInfo lists a random sample of activities for a location.
func (a *Agent) activityInfo(location string) string {
	n := 5
	if n > len(activities) {
		n = len(activities)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are some popular things to do in **%s**:\n\n", location)
	for i, idx := range a.rng.Perm(len(activities))[:n] {
		fmt.Fprintf(&b, "%d. %s\n", i+1, agent.TitleCase(activities[idx]))
	}
	b.WriteString("\nWould you like more specific information about any of these activities, or help with finding flights or accommodations for your trip?")

	return b.String()
}
