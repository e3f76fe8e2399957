package packages

// Confidence keyword tables. Unlike the other responders, high and medium
// hits here accumulate per keyword without a break, so stacked package
// vocabulary compounds quickly.
var (
	highConfidenceKeywords = []string{
		"package", "bundle", "combo", "travel package", "vacation package", "combo deal",
	}
	mediumConfidenceKeywords = []string{
		"trip", "vacation", "journey", "getaway", "holiday", "both", "together", "flight and hotel",
	}

	flightIndicators = []string{"flight", "fly", "airline", "plane", "travel"}
	hotelIndicators  = []string{"hotel", "stay", "room", "accommodation", "resort"}
)

// Confidence weights.
const (
	weightHighKeyword   = 0.4
	weightMediumKeyword = 0.2
	weightBothDomains   = 0.5
	weightCityMention   = 0.1
)

// Package defaults when the request leaves them out.
const (
	DefaultAdults      = 2
	DefaultChildren    = 0
	DefaultMaxPrice    = 1500
	DefaultHotelRating = 4
)

// Package types.
const (
	PackageTypeOneWay    = "one_way"
	PackageTypeRoundTrip = "round_trip"
)

var packageAirlines = []string{
	"Saudi Airlines", "Emirates", "Qatar Airways", "Etihad Airways",
	"Turkish Airlines", "Gulf Air", "Flynas", "Flyadeal",
}

var packageHotelNames = []string{
	"Grand Hyatt", "Marriott Hotel", "Four Seasons", "The Ritz-Carlton",
	"Hilton Hotel", "Shangri-La", "Radisson Blu", "Intercontinental",
	"Holiday Inn", "Crowne Plaza", "Movenpick", "Novotel",
}

var (
	cabinClasses = []string{"Economy", "Economy Plus", "Business", "First"}
	stopovers    = []string{"", "1 stop in Dubai", "1 stop in Istanbul", "1 stop in Doha"}
	roomTypes    = []string{"Standard", "Deluxe", "Suite", "Executive", "Family"}
	boardTypes   = []string{"Room Only", "Breakfast Included", "Half Board", "Full Board", "All Inclusive"}
)
