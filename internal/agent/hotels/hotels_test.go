package hotels_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"rahalah/internal/agent"
	"rahalah/internal/agent/hotels"
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

func newAgent() *hotels.Agent {
	return hotels.New(nopLogger{}, rand.New(rand.NewSource(1)))
}

var baseDay = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC) // a Tuesday

func TestExtractParams(t *testing.T) {
	t.Run("Location Guests And Price", func(t *testing.T) {
		p := hotels.ExtractParams("hotel in dubai for 3 guests under $200", baseDay)
		if p.Location != "DXB" {
			t.Errorf("location = %s, want DXB", p.Location)
		}
		if p.Guests != 3 {
			t.Errorf("guests = %d, want 3", p.Guests)
		}
		if p.MaxPrice != 200 {
			t.Errorf("max price = %d, want 200", p.MaxPrice)
		}
		wantIn := datemath.FormatISO(baseDay.AddDate(0, 0, 1))
		wantOut := datemath.FormatISO(baseDay.AddDate(0, 0, 4))
		if p.CheckIn != wantIn || p.CheckOut != wantOut {
			t.Errorf("stay = %s..%s, want %s..%s", p.CheckIn, p.CheckOut, wantIn, wantOut)
		}
	})

	t.Run("Misspelled City Token", func(t *testing.T) {
		p := hotels.ExtractParams("need a room in damma", baseDay)
		if p.Location != "DMM" {
			t.Errorf("location = %s, want DMM", p.Location)
		}
	})

	t.Run("Unknown Location Kept Verbatim", func(t *testing.T) {
		p := hotels.ExtractParams("accommodation in zanzibar", baseDay)
		if p.Location != "zanzibar" {
			t.Errorf("location = %q, want raw phrase %q", p.Location, "zanzibar")
		}
	})

	t.Run("Tonight Stay", func(t *testing.T) {
		p := hotels.ExtractParams("hotel in cairo tonight", baseDay)
		if p.CheckIn != datemath.FormatISO(baseDay) {
			t.Errorf("check-in = %s, want today", p.CheckIn)
		}
		if p.CheckOut != datemath.FormatISO(baseDay.AddDate(0, 0, 1)) {
			t.Errorf("check-out = %s, want tomorrow", p.CheckOut)
		}
	})

	t.Run("Weekend From Thursday", func(t *testing.T) {
		thursday := time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)
		p := hotels.ExtractParams("hotel in cairo this weekend", thursday)
		saturday := thursday.AddDate(0, 0, 2)
		if p.CheckIn != datemath.FormatISO(saturday) {
			t.Errorf("check-in = %s, want the upcoming Saturday %s", p.CheckIn, datemath.FormatISO(saturday))
		}
		if p.CheckOut != datemath.FormatISO(saturday.AddDate(0, 0, 2)) {
			t.Errorf("check-out = %s, want Monday", p.CheckOut)
		}
	})

	t.Run("Explicit Date Range", func(t *testing.T) {
		p := hotels.ExtractParams("hotel in dubai from march 15 to march 20", baseDay)
		if p.CheckIn != "2026-03-15" || p.CheckOut != "2026-03-20" {
			t.Errorf("stay = %s..%s, want 2026-03-15..2026-03-20", p.CheckIn, p.CheckOut)
		}
	})

	t.Run("Inverted Date Range Forces One Night", func(t *testing.T) {
		p := hotels.ExtractParams("hotel in dubai from march 20 to march 15", baseDay)
		if p.CheckIn != "2026-03-20" || p.CheckOut != "2026-03-21" {
			t.Errorf("stay = %s..%s, want 2026-03-20..2026-03-21", p.CheckIn, p.CheckOut)
		}
	})

	t.Run("Unparseable Range Keeps Defaults", func(t *testing.T) {
		p := hotels.ExtractParams("hotel in dubai from flursday 99 to blarch 3", baseDay)
		wantIn := datemath.FormatISO(baseDay.AddDate(0, 0, 1))
		if p.CheckIn != wantIn {
			t.Errorf("check-in = %s, want default %s", p.CheckIn, wantIn)
		}
	})

	t.Run("Amenity Mentions", func(t *testing.T) {
		p := hotels.ExtractParams("hotel in dubai with free wifi and a swimming pool", baseDay)
		want := map[string]bool{"Free WiFi": true, "Swimming pool": true}
		if len(p.Amenities) != 2 {
			t.Fatalf("amenities = %v, want 2 entries", p.Amenities)
		}
		for _, am := range p.Amenities {
			if !want[am] {
				t.Errorf("unexpected amenity %q", am)
			}
		}
	})
}

func TestConfidence(t *testing.T) {
	a := newAgent()

	t.Run("In Range For Arbitrary Inputs", func(t *testing.T) {
		inputs := []string{
			"", "hotel hotel hotel room stay resort inn in dubai suite night",
			"random words", "hotel in dammam for the weekend",
		}
		for _, in := range inputs {
			if got := a.Confidence(in); got < 0 || got > 1 {
				t.Errorf("Confidence(%q) = %f out of range", in, got)
			}
		}
	})

	t.Run("Hotel In City Scores High", func(t *testing.T) {
		if got := a.Confidence("hotel in dubai"); got < 0.5 {
			t.Errorf("Confidence = %f, want >= 0.5", got)
		}
	})

	t.Run("Unrelated Scores Zero", func(t *testing.T) {
		if got := a.Confidence("how do magnets work"); got != 0 {
			t.Errorf("Confidence = %f, want 0", got)
		}
	})
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Location Asks For Clarification", func(t *testing.T) {
		reply, err := newAgent().Handle(ctx, "i need a hotel room", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Kind != agent.KindText {
			t.Errorf("kind = %s, want text", reply.Kind)
		}
	})

	t.Run("Located Stay Returns Sorted Offers", func(t *testing.T) {
		reply, err := newAgent().Handle(ctx, "hotel in dubai for 3 guests under $200", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Kind != agent.KindHotels {
			t.Errorf("kind = %s, want hotels", reply.Kind)
		}
		if len(reply.Results) < 2 || len(reply.Results) > 4 {
			t.Fatalf("expected 2-4 offers, got %d", len(reply.Results))
		}
		prev := -1
		for _, r := range reply.Results {
			opt, ok := r.(hotels.Option)
			if !ok {
				t.Fatalf("unexpected result type %T", r)
			}
			if opt.Price < prev {
				t.Errorf("offers not sorted ascending by price")
			}
			if opt.Price > 200 {
				t.Errorf("offer price %d above the $200 ceiling", opt.Price)
			}
			prev = opt.Price
		}
	})
}
