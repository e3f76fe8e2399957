package flights_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"rahalah/internal/agent"
	"rahalah/internal/agent/flights"
	"rahalah/pkg/datemath"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

func newAgent() *flights.Agent {
	return flights.New(nopLogger{}, rand.New(rand.NewSource(1)))
}

var baseDay = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC) // a Tuesday

func TestExtractParams(t *testing.T) {
	t.Run("Direct Code Pair With Tomorrow", func(t *testing.T) {
		p := flights.ExtractParams("DMM to RUH tomorrow", baseDay)
		if p.DepartureID != "DMM" || p.ArrivalID != "RUH" {
			t.Errorf("route = %s→%s, want DMM→RUH", p.DepartureID, p.ArrivalID)
		}
		want := datemath.FormatISO(baseDay.AddDate(0, 0, 1))
		if p.OutboundDate != want {
			t.Errorf("outbound = %s, want %s", p.OutboundDate, want)
		}
	})

	t.Run("Dash Separated Codes", func(t *testing.T) {
		p := flights.ExtractParams("book jed-dxb please", baseDay)
		if p.DepartureID != "JED" || p.ArrivalID != "DXB" {
			t.Errorf("route = %s→%s, want JED→DXB", p.DepartureID, p.ArrivalID)
		}
	})

	t.Run("From To Phrase With City Names", func(t *testing.T) {
		p := flights.ExtractParams("flight from dammam to riyadh next week", baseDay)
		if p.DepartureID != "DMM" || p.ArrivalID != "RUH" {
			t.Errorf("route = %s→%s, want DMM→RUH", p.DepartureID, p.ArrivalID)
		}
		want := datemath.FormatISO(baseDay.AddDate(0, 0, 7))
		if p.OutboundDate != want {
			t.Errorf("outbound = %s, want %s", p.OutboundDate, want)
		}
	})

	t.Run("Bare Mentions In Order Of Appearance", func(t *testing.T) {
		p := flights.ExtractParams("any flights between riyadh and dubai?", baseDay)
		if p.DepartureID != "RUH" || p.ArrivalID != "DXB" {
			t.Errorf("route = %s→%s, want RUH→DXB", p.DepartureID, p.ArrivalID)
		}
	})

	t.Run("Single Mention Leaves Route Incomplete", func(t *testing.T) {
		p := flights.ExtractParams("i want to fly to istanbul", baseDay)
		if p.DepartureID != "" && p.ArrivalID != "" {
			t.Errorf("expected incomplete route, got %s→%s", p.DepartureID, p.ArrivalID)
		}
	})

	t.Run("Explicit Offset Overrides Marker", func(t *testing.T) {
		p := flights.ExtractParams("DMM to RUH next week, actually in 3 days", baseDay)
		want := datemath.FormatISO(baseDay.AddDate(0, 0, 3))
		if p.OutboundDate != want {
			t.Errorf("outbound = %s, want %s", p.OutboundDate, want)
		}
	})

	t.Run("Month Offset Is Thirty Days", func(t *testing.T) {
		p := flights.ExtractParams("DMM to RUH in 2 months", baseDay)
		want := datemath.FormatISO(baseDay.AddDate(0, 0, 60))
		if p.OutboundDate != want {
			t.Errorf("outbound = %s, want %s", p.OutboundDate, want)
		}
	})

	t.Run("Price Ceiling", func(t *testing.T) {
		p := flights.ExtractParams("DMM to RUH under $250", baseDay)
		if p.MaxPrice != 250 {
			t.Errorf("max price = %d, want 250", p.MaxPrice)
		}
	})

	t.Run("Default Price Ceiling", func(t *testing.T) {
		p := flights.ExtractParams("DMM to RUH", baseDay)
		if p.MaxPrice != flights.DefaultMaxPrice {
			t.Errorf("max price = %d, want %d", p.MaxPrice, flights.DefaultMaxPrice)
		}
	})

	t.Run("Round Trip With Return Offset", func(t *testing.T) {
		// "in 1 week" inside "returning in 1 week" also matches the generic
		// offset pattern and overrides "tomorrow", so the outbound moves to
		// +7 and the return counts a further week from there.
		p := flights.ExtractParams("round trip DMM to RUH tomorrow returning in 1 week", baseDay)
		if p.FlightType != flights.FlightTypeRoundTrip {
			t.Errorf("flight type = %s, want %s", p.FlightType, flights.FlightTypeRoundTrip)
		}
		wantOutbound := datemath.FormatISO(baseDay.AddDate(0, 0, 7))
		if p.OutboundDate != wantOutbound {
			t.Errorf("outbound = %s, want %s", p.OutboundDate, wantOutbound)
		}
		wantReturn := datemath.FormatISO(baseDay.AddDate(0, 0, 14))
		if p.ReturnDate != wantReturn {
			t.Errorf("return = %s, want %s", p.ReturnDate, wantReturn)
		}
	})
}

func TestConfidence(t *testing.T) {
	a := newAgent()

	tests := []struct {
		name string
		text string
		want float64
	}{
		// from-to pattern (0.6) + airport (0.3) + "flight" (0.2), clamped.
		{"Strong Flight Query", "flight from dammam to riyadh", 1.0},
		// "fly" keyword only.
		{"Keyword Only", "i want to fly somewhere", 0.2},
		// airport mention only.
		{"Airport Only", "what about dubai", 0.3},
		{"Unrelated", "what is the weather like", 0.0},
		// "travel" medium keyword.
		{"Medium Keyword", "travel ideas", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Confidence(tt.text)
			if got < 0 || got > 1 {
				t.Fatalf("confidence %f out of range", got)
			}
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Confidence(%q) = %f, want %f", tt.text, got, tt.want)
			}
		})
	}
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Route Asks For Clarification", func(t *testing.T) {
		reply, err := newAgent().Handle(ctx, "i need a plane ticket", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Kind != agent.KindText {
			t.Errorf("kind = %s, want text", reply.Kind)
		}
		if len(reply.Results) != 0 {
			t.Errorf("clarification reply must carry no results")
		}
	})

	t.Run("Complete Route Returns Sorted Offers", func(t *testing.T) {
		reply, err := newAgent().Handle(ctx, "DMM to RUH tomorrow", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Kind != agent.KindFlights {
			t.Errorf("kind = %s, want flights", reply.Kind)
		}
		if len(reply.Results) < 2 || len(reply.Results) > 4 {
			t.Fatalf("expected 2-4 offers, got %d", len(reply.Results))
		}
		prev := -1
		for _, r := range reply.Results {
			opt, ok := r.(flights.Option)
			if !ok {
				t.Fatalf("unexpected result type %T", r)
			}
			if opt.Price < prev {
				t.Errorf("offers not sorted ascending by price")
			}
			prev = opt.Price
		}
	})
}
