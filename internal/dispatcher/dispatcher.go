package dispatcher

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"rahalah/internal/agent"
	"rahalah/internal/model"
)

// scored pairs a selected responder with its confidence for one turn.
type scored struct {
	id    agent.ID
	score float64
	reply agent.Reply
}

// Process runs one user turn end to end: score, select, invoke, consolidate.
// It never fails: any error or panic inside a responder is converted into an
// apology reply, and the turn is still recorded in history either way.
func (d *Dispatcher) Process(ctx context.Context, text string, reqContext map[string]any) (reply agent.Reply) {
	d.mu.Lock()
	defer d.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "dispatcher: panic during turn: %v", r)
			reply = agent.Reply{
				Content: fmt.Sprintf(faultApology, r),
				Kind:    agent.KindText,
			}
			d.history = append(d.history, model.Message{Role: model.RoleAssistant, Content: reply.Content})
		}
	}()

	for k, v := range reqContext {
		d.context[k] = v
	}
	d.history = append(d.history, model.Message{Role: model.RoleUser, Content: text})
	d.extractPreferences(text)

	scores := d.scoreAll(text)
	d.l.Infof(ctx, "dispatcher: scores for turn: %v", scores)

	selected := d.selectResponders(scores)

	collected := make([]scored, 0, len(selected))
	for _, sel := range selected {
		r := d.responders[sel.id]

		reqCopy := make(map[string]any, len(d.context))
		for k, v := range d.context {
			reqCopy[k] = v
		}

		resp, err := r.Handle(ctx, text, reqCopy)
		if err != nil {
			d.l.Errorf(ctx, "dispatcher: responder %s failed: %v", sel.id, err)
			reply = agent.Reply{
				Content: fmt.Sprintf(faultApology, err),
				Kind:    agent.KindText,
			}
			d.history = append(d.history, model.Message{Role: model.RoleAssistant, Content: reply.Content})
			return reply
		}
		sel.reply = resp
		collected = append(collected, sel)
	}

	if len(collected) == 0 {
		d.l.Warnf(ctx, "dispatcher: no responder cleared the threshold")
		reply = agent.Reply{Content: fallbackApology, Kind: agent.KindText}
	} else {
		reply = consolidate(collected)
	}

	d.history = append(d.history, model.Message{Role: model.RoleAssistant, Content: reply.Content})
	return reply
}

// ConfidenceBreakdown returns every responder's raw score for the text,
// without the forced-fallback adjustment. Introspection only.
func (d *Dispatcher) ConfidenceBreakdown(text string) map[agent.ID]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scoreAll(text)
}

// History returns a copy of the conversation so far.
func (d *Dispatcher) History() []model.Message {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]model.Message, len(d.history))
	copy(out, d.history)
	return out
}

// Preferences returns a copy of the preferences extracted so far.
func (d *Dispatcher) Preferences() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make(map[string]any, len(d.preferences))
	for k, v := range d.preferences {
		out[k] = v
	}
	return out
}

// scoreAll collects every registered responder's confidence. Callers hold mu.
func (d *Dispatcher) scoreAll(text string) map[agent.ID]float64 {
	scores := make(map[agent.ID]float64, len(d.responders))
	for _, id := range d.ids {
		scores[id] = d.responders[id].Confidence(text)
	}
	return scores
}

// selectResponders keeps responders at or above the threshold, ordered by
// descending score with registration order breaking ties. When every score
// is zero the general responder is forced in at full confidence, so a
// handler always exists.
func (d *Dispatcher) selectResponders(scores map[agent.ID]float64) []scored {
	allZero := true
	for _, s := range scores {
		if s > 0 {
			allZero = false
			break
		}
	}
	if allZero {
		if _, ok := d.responders[agent.IDGeneral]; ok {
			scores[agent.IDGeneral] = 1.0
		}
	}

	selected := make([]scored, 0, len(scores))
	for _, id := range d.ids {
		if s := scores[id]; s >= selectionThreshold {
			selected = append(selected, scored{id: id, score: s})
		}
	}
	sort.SliceStable(selected, func(i, j int) bool { return selected[i].score > selected[j].score })
	return selected
}

// consolidate merges the collected replies. A single reply passes through
// untouched; multiple replies collapse into one text reply whose content is
// the blank-line join of the parts and whose results land in per-domain
// buckets.
func consolidate(collected []scored) agent.Reply {
	if len(collected) == 1 {
		return collected[0].reply
	}

	var contents []string
	merged := agent.Reply{Kind: agent.KindText}

	for _, c := range collected {
		if c.reply.Content != "" {
			contents = append(contents, c.reply.Content)
		}
		switch c.id {
		case agent.IDFlights:
			merged.FlightResults = append(merged.FlightResults, c.reply.Results...)
		case agent.IDHotels:
			merged.HotelResults = append(merged.HotelResults, c.reply.Results...)
		case agent.IDPackages:
			merged.PackageResults = append(merged.PackageResults, c.reply.Results...)
		}
	}

	merged.Content = strings.Join(contents, "\n\n")
	return merged
}
