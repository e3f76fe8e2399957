package flights

import (
	"context"
	"fmt"
	"time"

	"rahalah/internal/agent"
)

// Handle extracts flight parameters and answers with mock flight offers, or
// with a clarification request when the route is incomplete.
func (a *Agent) Handle(ctx context.Context, text string, reqContext map[string]any) (agent.Reply, error) {
	for k, v := range reqContext {
		a.context[k] = v
	}

	now := time.Now()
	params := ExtractParams(text, now)
	a.l.Infof(ctx, "flights: extracted params: %+v", params)

	if params.DepartureID == "" || params.ArrivalID == "" {
		return agent.Reply{
			Content: "I'd be happy to help you find flights! Could you please specify your departure and arrival cities or airports?",
			Kind:    agent.KindText,
		}, nil
	}

	content := fmt.Sprintf("I found some great flight options from %s to %s", params.DepartureID, params.ArrivalID)
	if params.OutboundDate != "" {
		content += fmt.Sprintf(" on %s", params.OutboundDate)
	} else {
		content += " based on your request"
	}
	content += ". Here are the best options:"

	return agent.Reply{
		Content: content,
		Kind:    agent.KindFlights,
		Results: a.mockResults(params, now),
	}, nil
}
