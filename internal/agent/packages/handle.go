package packages

import (
	"context"
	"fmt"
	"time"

	"rahalah/internal/agent"
	"rahalah/internal/agent/flights"
)

// Handle extracts package parameters and answers with mock package offers.
// Both ends of the route are required; whichever is missing drives the
// clarification request.
func (a *Agent) Handle(ctx context.Context, text string, reqContext map[string]any) (agent.Reply, error) {
	for k, v := range reqContext {
		a.context[k] = v
	}

	params := ExtractParams(text, time.Now())
	a.l.Infof(ctx, "packages: extracted params: %+v", params)

	if params.Destination == "" {
		return agent.Reply{
			Content: "I'd be happy to help you find a travel package! Could you please specify your destination?",
			Kind:    agent.KindText,
		}, nil
	}

	if params.Departure == "" {
		return agent.Reply{
			Content: "I'd be happy to help you find a travel package! Could you please specify your departure city?",
			Kind:    agent.KindText,
		}, nil
	}

	content := fmt.Sprintf("I found some great travel packages from %s to %s",
		agent.TitleCase(flights.AirportName(params.Departure)),
		agent.TitleCase(flights.AirportName(params.Destination)))
	if params.OutboundDate != "" {
		content += fmt.Sprintf(" departing on %s", params.OutboundDate)
	}
	if params.ReturnDate != "" {
		content += fmt.Sprintf(" and returning on %s", params.ReturnDate)
	}
	content += ". Each package includes both flight and hotel accommodations. Here are the best options:"

	return agent.Reply{
		Content: content,
		Kind:    agent.KindPackages,
		Results: a.mockResults(params),
	}, nil
}
