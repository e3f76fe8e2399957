package agent

import "context"

// ID identifies a registered responder.
type ID string

const (
	IDFlights  ID = "flights"
	IDHotels   ID = "hotels"
	IDGeneral  ID = "general"
	IDPackages ID = "packages"
)

// Kind classifies the payload carried by a Reply.
type Kind string

const (
	KindText     Kind = "text"
	KindFlights  Kind = "flights"
	KindHotels   Kind = "hotels"
	KindPackages Kind = "packages"
)

// Result is an opaque result record produced by a responder's mock generator.
// The dispatcher forwards results without inspecting them beyond presence.
type Result = any

// Reply is a responder's answer to one user turn.
//
// Results is present only when Kind is not KindText. The bucketed fields are
// populated only by the dispatcher when consolidating multiple replies;
// single-responder replies pass through unchanged.
type Reply struct {
	Content string   `json:"content"`
	Kind    Kind     `json:"type"`
	Results []Result `json:"results,omitempty"`

	FlightResults  []Result `json:"flight_results,omitempty"`
	HotelResults   []Result `json:"hotel_results,omitempty"`
	PackageResults []Result `json:"package_results,omitempty"`
}

// Responder is a specialized handler for one request domain.
type Responder interface {
	// Name returns the responder's human-readable name.
	Name() string

	// Confidence estimates how well this responder matches the request,
	// in [0, 1]. It is a pure function of the lowercased text: it never
	// fails and never mutates responder state.
	Confidence(text string) float64

	// Handle processes the request. reqContext is merged into the
	// responder's retained context. A missing required field is not an
	// error: the responder answers with a clarification request of
	// KindText instead.
	Handle(ctx context.Context, text string, reqContext map[string]any) (Reply, error)
}

// ClampScore caps a confidence score at 1.0. Scores accumulate as a
// saturating sum of category bonuses, not a probabilistic combination.
func ClampScore(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}
