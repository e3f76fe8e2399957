package hotels

// cityCode pairs a lowercase token with its city code. The table includes
// common misspellings of Dammam seen in real chat traffic.
type cityCode struct {
	token string
	code  string
}

var cityTable = []cityCode{
	{"dammam", "DMM"},
	{"damm", "DMM"},
	{"damma", "DMM"},
	{"dmm", "DMM"},
	{"jeddah", "JED"},
	{"jed", "JED"},
	{"riyadh", "RUH"},
	{"ruh", "RUH"},
	{"dubai", "DXB"},
	{"dxb", "DXB"},
	{"bangkok", "BKK"},
	{"bkk", "BKK"},
	{"istanbul", "IST"},
	{"ist", "IST"},
	{"cairo", "CAI"},
	{"london", "LHR"},
	{"lhr", "LHR"},
	{"paris", "CDG"},
	{"cdg", "CDG"},
	{"new york", "JFK"},
	{"jfk", "JFK"},
}

// Amenities is the fixed amenity vocabulary matched against requests and
// sampled into mock results.
var Amenities = []string{
	"Free WiFi", "Swimming pool", "Fitness center", "Restaurant",
	"Room service", "Spa", "Airport shuttle", "Business center",
	"Free parking", "Breakfast included", "Air conditioning",
	"Concierge service", "Hot tub", "Bar/Lounge",
}

var (
	highConfidenceKeywords   = []string{"hotel", "room", "accommodation", "stay", "lodge", "resort", "inn"}
	mediumConfidenceKeywords = []string{"book", "reservation", "night", "suite", "check-in", "check-out"}
)

// Confidence weights.
const (
	weightHotelInPattern  = 0.6
	weightKeywordCityPair = 0.7
	weightCityMention     = 0.3
	weightHighKeyword     = 0.2
	weightMediumKeyword   = 0.1
)

// Stay defaults when the request carries no dates or party size.
const (
	DefaultGuests   = 2
	DefaultMaxPrice = 300
	DefaultNights   = 3
)

var hotelChains = []string{
	"Hilton", "Marriott", "Hyatt", "Sheraton", "Four Seasons",
	"Ritz-Carlton", "Westin", "Holiday Inn", "InterContinental",
	"Radisson", "Fairmont", "Waldorf Astoria", "St. Regis", "W Hotels",
}

// locationNames flavors mock hotel names per city.
var locationNames = map[string][]string{
	"DMM": {"Dammam", "Corniche", "Al Khobar", "Dhahran", "Eastern Province"},
	"JED": {"Jeddah", "Red Sea", "Al Balad", "Corniche", "Andalus"},
	"RUH": {"Riyadh", "Kingdom Centre", "Olaya", "Diplomatic Quarter", "Al Faisaliah"},
	"DXB": {"Dubai", "Marina", "Downtown", "Palm Jumeirah", "Business Bay"},
	"BKK": {"Bangkok", "Sukhumvit", "Riverside", "Silom", "Siam"},
	"IST": {"Istanbul", "Bosphorus", "Taksim", "Sultanahmet", "Beyoglu"},
	"CAI": {"Cairo", "Nile", "Giza", "Heliopolis", "Zamalek"},
	"LHR": {"London", "Westminster", "Kensington", "Mayfair", "Chelsea"},
	"CDG": {"Paris", "Champs-Élysées", "Eiffel", "Opera", "Louvre"},
	"JFK": {"New York", "Manhattan", "Times Square", "Central Park", "Broadway"},
}

var genericLocationNames = []string{"City Center", "Downtown", "Plaza", "Boulevard", "Resort"}
