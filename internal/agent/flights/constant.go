package flights

// cityCode pairs a lowercase token (city name or IATA code) with its IATA code.
type cityCode struct {
	token string
	iata  string
}

// airportTable lists every airport the assistant knows. Order matters: the
// extraction waterfall scans it front to back.
var airportTable = []cityCode{
	{"dmm", "DMM"}, {"dammam", "DMM"},
	{"jed", "JED"}, {"jeddah", "JED"},
	{"ruh", "RUH"}, {"riyadh", "RUH"},
	{"dxb", "DXB"}, {"dubai", "DXB"},
	{"bkk", "BKK"}, {"bangkok", "BKK"},
	{"ist", "IST"}, {"istanbul", "IST"},
	{"cai", "CAI"}, {"cairo", "CAI"},
	{"lhr", "LHR"}, {"london", "LHR"},
	{"cdg", "CDG"}, {"paris", "CDG"},
	{"jfk", "JFK"}, {"new york", "JFK"},
}

// Confidence keyword tables. Each hit adds its category weight; the sum is
// clamped at 1.0.
var (
	highConfidenceKeywords   = []string{"flight", "fly", "plane", "airport", "airline", "ticket"}
	mediumConfidenceKeywords = []string{"travel", "trip", "journey", "booking"}
)

// Confidence weights.
const (
	weightFromToPattern  = 0.6
	weightAirportMention = 0.3
	weightHighKeyword    = 0.2
	weightMediumKeyword  = 0.1
)

// Flight types.
const (
	FlightTypeOneWay    = "one_way"
	FlightTypeRoundTrip = "round_trip"
)

// DefaultMaxPrice is the price ceiling assumed when the user gives none.
const DefaultMaxPrice = 1000

var airlines = []string{
	"Saudi Arabian Airlines", "Emirates", "Qatar Airways", "Turkish Airlines", "Etihad Airways",
}

// routeBasePrices holds per-route base fares; unknown routes fall back to
// defaultBasePrice.
var routeBasePrices = map[string]int{
	"DMM-JED": 200,
	"DMM-RUH": 150,
	"DMM-DXB": 300,
	"DMM-BKK": 450,
	"JED-DMM": 200,
	"JED-RUH": 180,
	"JED-DXB": 280,
	"RUH-DMM": 150,
	"RUH-JED": 180,
	"RUH-DXB": 250,
	"RUH-IST": 380,
}

const defaultBasePrice = 350
