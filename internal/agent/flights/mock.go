package flights

import (
	"fmt"
	"sort"
	"time"

	"rahalah/internal/agent"
	"rahalah/pkg/datemath"
)

// Option is one synthetic flight offer. Field names follow the chat wire
// format consumed by the front end.
type Option struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Price      int    `json:"price"`
	Duration   string `json:"duration"`
	Departure  string `json:"departure"`
	Airline    string `json:"airline"`
	BookingURL string `json:"bookingUrl"`
}

// mockResults fabricates 2-4 flight offers for the route, priced around the
// route's base fare and sorted ascending by price. Stands in for a real
// flight search call.
func (a *Agent) mockResults(params Params, now time.Time) []agent.Result {
	departureID := params.DepartureID
	if departureID == "" {
		departureID = "DMM"
	}
	arrivalID := params.ArrivalID
	if arrivalID == "" {
		arrivalID = "JED"
	}

	basePrice, ok := routeBasePrices[departureID+"-"+arrivalID]
	if !ok {
		basePrice = defaultBasePrice
	}

	departureDate := params.OutboundDate
	if departureDate == "" {
		departureDate = datemath.FormatISO(now)
	}

	minutes := []int{0, 15, 30, 45}

	numFlights := 2 + a.rng.Intn(3)
	options := make([]Option, 0, numFlights)
	for i := 0; i < numFlights; i++ {
		priceVariation := 0.8 + a.rng.Float64()*0.4
		price := int(float64(basePrice) * priceVariation)

		duration := fmt.Sprintf("%dh %dm", 1+a.rng.Intn(8), a.rng.Intn(60))
		departureTime := fmt.Sprintf("%02d:%02d", 6+a.rng.Intn(17), minutes[a.rng.Intn(len(minutes))])

		options = append(options, Option{
			From:       departureID,
			To:         arrivalID,
			Price:      price,
			Duration:   duration,
			Departure:  fmt.Sprintf("%s %s", departureDate, departureTime),
			Airline:    airlines[a.rng.Intn(len(airlines))],
			BookingURL: "#",
		})
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Price < options[j].Price })

	results := make([]agent.Result, len(options))
	for i, opt := range options {
		results[i] = opt
	}
	return results
}
