package packages

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"rahalah/internal/agent/flights"
	"rahalah/internal/agent/hotels"
)

// Params is the structured package search request. Departure and Destination
// come from the flight extractor; the hotel extractor supplies fallback
// destination and dates.
type Params struct {
	Departure    string `json:"departure,omitempty"`
	Destination  string `json:"destination,omitempty"`
	OutboundDate string `json:"outbound_date,omitempty"`
	ReturnDate   string `json:"return_date,omitempty"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	MaxPrice     int    `json:"max_price"`
	HotelRating  int    `json:"hotel_rating"`
	PackageType  string `json:"package_type"`
}

var (
	travelersPattern = regexp.MustCompile(`(\d+)\s+(?:adult|person|people|traveler)`)
	childrenPattern  = regexp.MustCompile(`(\d+)\s+(?:child|children|kid|kids)`)
	budgetPattern    = regexp.MustCompile(`(?:under|less than|budget|max|maximum)\s+\$?(\d+)`)
)

// ExtractParams combines the flight and hotel extraction waterfalls into a
// single package request. The flight arrival wins as the destination; the
// hotel location is the fallback. Stay dates fill in missing travel dates,
// and the hotel check-out doubles as the return date.
func ExtractParams(text string, now time.Time) Params {
	lower := strings.ToLower(text)

	flightParams := flights.ExtractParams(text, now)
	hotelParams := hotels.ExtractParams(text, now)

	params := Params{
		Departure:    flightParams.DepartureID,
		Destination:  flightParams.ArrivalID,
		OutboundDate: flightParams.OutboundDate,
		Adults:       DefaultAdults,
		Children:     DefaultChildren,
		MaxPrice:     DefaultMaxPrice,
		HotelRating:  DefaultHotelRating,
	}

	if params.Destination == "" && hotelParams.Location != "" {
		params.Destination = hotelParams.Location
	}

	if params.OutboundDate == "" && hotelParams.CheckIn != "" {
		params.OutboundDate = hotelParams.CheckIn
	}

	if hotelParams.CheckOut != "" {
		params.ReturnDate = hotelParams.CheckOut
	}

	params.PackageType = PackageTypeOneWay
	if params.ReturnDate != "" {
		params.PackageType = PackageTypeRoundTrip
	}

	if m := travelersPattern.FindStringSubmatch(lower); m != nil {
		params.Adults, _ = strconv.Atoi(m[1])
	}

	if m := childrenPattern.FindStringSubmatch(lower); m != nil {
		params.Children, _ = strconv.Atoi(m[1])
	}

	if m := budgetPattern.FindStringSubmatch(lower); m != nil {
		params.MaxPrice, _ = strconv.Atoi(m[1])
	}

	for rating := 5; rating >= 1; rating-- {
		digit := strconv.Itoa(rating)
		if strings.Contains(lower, digit+" star") || strings.Contains(lower, digit+"-star") {
			params.HotelRating = rating
			break
		}
	}

	return params
}
