package hotels

import (
	"math"
	"sort"
	"time"

	"rahalah/internal/agent"
	"rahalah/pkg/datemath"
)

// Option is one synthetic hotel offer.
type Option struct {
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Price         int      `json:"price"`
	PricePerNight int      `json:"price_per_night"`
	TotalPrice    int      `json:"total_price"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Amenities     []string `json:"amenities"`
	Image         string   `json:"image"`
	BookingURL    string   `json:"bookingUrl"`
}

// mockResults fabricates 2-4 hotel offers under the price ceiling, sorted
// ascending by nightly price. Stands in for a real hotel booking call.
func (a *Agent) mockResults(params Params) []agent.Result {
	location := params.Location
	if location == "" {
		location = "Unknown"
	}

	nameOptions, ok := locationNames[location]
	if !ok {
		nameOptions = genericLocationNames
	}

	displayLocation := location
	if len(location) != 3 {
		displayLocation = agent.TitleCase(location)
	}

	nights := stayNights(params.CheckIn, params.CheckOut)

	numHotels := 2 + a.rng.Intn(3)
	options := make([]Option, 0, numHotels)
	for i := 0; i < numHotels; i++ {
		priceVariation := 0.7 + a.rng.Float64()*0.3
		price := int(float64(params.MaxPrice) * priceVariation)

		rating := math.Round((3.5+a.rng.Float64()*1.5)*10) / 10

		options = append(options, Option{
			Name:          hotelChains[a.rng.Intn(len(hotelChains))] + " " + nameOptions[a.rng.Intn(len(nameOptions))],
			Location:      displayLocation,
			Price:         price,
			PricePerNight: price,
			TotalPrice:    price * nights,
			Rating:        rating,
			Reviews:       50 + a.rng.Intn(1451),
			Amenities:     a.sampleAmenities(4 + a.rng.Intn(5)),
			Image:         "#",
			BookingURL:    "#",
		})
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Price < options[j].Price })

	results := make([]agent.Result, len(options))
	for i, opt := range options {
		results[i] = opt
	}
	return results
}

// sampleAmenities picks n distinct amenities from the vocabulary.
func (a *Agent) sampleAmenities(n int) []string {
	if n > len(Amenities) {
		n = len(Amenities)
	}
	picked := make([]string, 0, n)
	for _, idx := range a.rng.Perm(len(Amenities))[:n] {
		picked = append(picked, Amenities[idx])
	}
	return picked
}

// stayNights counts nights between two ISO dates, with a one-night floor.
func stayNights(checkIn, checkOut string) int {
	in, errIn := time.Parse(datemath.DateFormatISO, checkIn)
	out, errOut := time.Parse(datemath.DateFormatISO, checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
