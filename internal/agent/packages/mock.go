package packages

import (
	"fmt"
	"math"
	"sort"

	"rahalah/internal/agent"
	"rahalah/internal/agent/hotels"
)

// Flight is the flight leg of a package offer.
type Flight struct {
	Airline          string `json:"airline"`
	FlightNumber     string `json:"flight_number"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	Duration         string `json:"duration"`
	Class            string `json:"class"`
	Stopover         string `json:"stopover,omitempty"`
}

// Hotel is the stay component of a package offer.
type Hotel struct {
	Name      string   `json:"name"`
	Rating    int      `json:"rating"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
	RoomType  string   `json:"room_type"`
	BoardType string   `json:"board_type"`
}

// Option is one synthetic package offer bundling a flight and a hotel, with
// a fabricated discount against an inflated original price.
type Option struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Flight         Flight `json:"flight"`
	Hotel          Hotel  `json:"hotel"`
	Price          int    `json:"price"`
	OriginalPrice  int    `json:"original_price"`
	Savings        int    `json:"savings"`
	SavingsPercent int    `json:"savings_percent"`
	Nights         int    `json:"nights"`
	PackageType    string `json:"package_type"`
	OutboundDate   string `json:"outbound_date,omitempty"`
}

// mockResults fabricates 3-5 package offers sorted ascending by price.
// Offers priced over the budget are dropped rather than clamped, so the
// list can come back short or even empty.
func (a *Agent) mockResults(params Params) []agent.Result {
	numPackages := 3 + a.rng.Intn(3)
	options := make([]Option, 0, numPackages)

	for i := 0; i < numPackages; i++ {
		flight := a.mockFlight(params)
		hotel := a.mockHotel(params)

		basePrice := float64(300 + hotel.Rating*100)
		if flight.Class != "Economy" {
			basePrice += 300
		}
		if params.PackageType == PackageTypeRoundTrip {
			basePrice *= 1.8
		}

		priceVariation := 0.85 + a.rng.Float64()*0.3
		totalPrice := int(math.Round(basePrice*priceVariation*float64(params.Adults) +
			basePrice*0.7*priceVariation*float64(params.Children)))

		if params.MaxPrice > 0 && totalPrice > params.MaxPrice {
			continue
		}

		originalPrice := int(math.Round(float64(totalPrice) * (1.15 + a.rng.Float64()*0.15)))
		savings := originalPrice - totalPrice
		savingsPercent := int(math.Round(float64(savings) / float64(originalPrice) * 100))

		options = append(options, Option{
			ID:             fmt.Sprintf("PKG-%d", 10000+a.rng.Intn(90000)),
			Name:           fmt.Sprintf("%s %s %s Package", flight.Airline, hotel.Name, params.Destination),
			Flight:         flight,
			Hotel:          hotel,
			Price:          totalPrice,
			OriginalPrice:  originalPrice,
			Savings:        savings,
			SavingsPercent: savingsPercent,
			Nights:         3 + a.rng.Intn(5),
			PackageType:    params.PackageType,
			OutboundDate:   params.OutboundDate,
		})
	}

	sort.Slice(options, func(i, j int) bool { return options[i].Price < options[j].Price })

	results := make([]agent.Result, len(options))
	for i, opt := range options {
		results[i] = opt
	}
	return results
}

func (a *Agent) mockFlight(params Params) Flight {
	return Flight{
		Airline:          packageAirlines[a.rng.Intn(len(packageAirlines))],
		FlightNumber:     fmt.Sprintf("%c%c%d", 'A'+rune(a.rng.Intn(26)), 'A'+rune(a.rng.Intn(26)), 100+a.rng.Intn(900)),
		DepartureAirport: params.Departure,
		ArrivalAirport:   params.Destination,
		DepartureTime:    a.mockTime(),
		ArrivalTime:      a.mockTime(),
		Duration:         fmt.Sprintf("%dh %dm", 1+a.rng.Intn(8), a.rng.Intn(56)),
		Class:            cabinClasses[a.rng.Intn(len(cabinClasses))],
		Stopover:         stopovers[a.rng.Intn(len(stopovers))],
	}
}

func (a *Agent) mockHotel(params Params) Hotel {
	rating := params.HotelRating + []int{-1, 0, 0, 1}[a.rng.Intn(4)]
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	location := hotels.CityName(params.Destination)
	if location == params.Destination {
		location = "City Center"
	}

	return Hotel{
		Name:      packageHotelNames[a.rng.Intn(len(packageHotelNames))],
		Rating:    rating,
		Location:  location,
		Amenities: a.sampleAmenities(3 + a.rng.Intn(4)),
		RoomType:  roomTypes[a.rng.Intn(len(roomTypes))],
		BoardType: boardTypes[a.rng.Intn(len(boardTypes))],
	}
}

func (a *Agent) mockTime() string {
	minutes := []string{"00", "15", "30", "45"}
	return fmt.Sprintf("%02d:%s", a.rng.Intn(24), minutes[a.rng.Intn(len(minutes))])
}

func (a *Agent) sampleAmenities(n int) []string {
	if n > len(hotels.Amenities) {
		n = len(hotels.Amenities)
	}
	picked := make([]string, 0, n)
	for _, idx := range a.rng.Perm(len(hotels.Amenities))[:n] {
		picked = append(picked, hotels.Amenities[idx])
	}
	return picked
}
