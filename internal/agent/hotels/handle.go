package hotels

import (
	"context"
	"fmt"
	"time"

	"rahalah/internal/agent"
)

// Handle extracts hotel parameters and answers with mock hotel offers, or
// with a clarification request when no location was resolved.
func (a *Agent) Handle(ctx context.Context, text string, reqContext map[string]any) (agent.Reply, error) {
	for k, v := range reqContext {
		a.context[k] = v
	}

	params := ExtractParams(text, time.Now())
	a.l.Infof(ctx, "hotels: extracted params: %+v", params)

	if params.Location == "" {
		return agent.Reply{
			Content: "I'd be happy to help you find a hotel! Could you please specify which city or location you're interested in?",
			Kind:    agent.KindText,
		}, nil
	}

	locationName := CityName(params.Location)
	content := fmt.Sprintf("I found some excellent hotel options in %s", agent.TitleCase(locationName))
	if params.CheckIn != "" && params.CheckOut != "" {
		content += fmt.Sprintf(" from %s to %s", params.CheckIn, params.CheckOut)
	}
	if params.Guests > 0 {
		content += fmt.Sprintf(" for %d guest(s)", params.Guests)
	}
	content += ". Here are my top recommendations:"

	return agent.Reply{
		Content: content,
		Kind:    agent.KindHotels,
		Results: a.mockResults(params),
	}, nil
}
