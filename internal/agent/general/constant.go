package general

// destinations the assistant volunteers information about.
var destinations = []string{
	"Paris", "London", "New York", "Tokyo", "Dubai", "Istanbul",
	"Rome", "Bangkok", "Singapore", "Barcelona", "Sydney", "Cairo",
	"Riyadh", "Jeddah", "Dammam", "Madinah", "Makkah",
}

// activities sampled into "things to do" answers.
var activities = []string{
	"sightseeing", "museums", "shopping", "food tours", "beaches",
	"hiking", "cultural experiences", "historical sites", "theme parks",
	"nightlife", "desert safari", "wildlife viewing", "water sports",
}

var greetingResponses = []string{
	"Hello! How can I help with your travel plans today?",
	"Hi there! I'm your Rahalah travel assistant. Where would you like to travel?",
	"Welcome to Rahalah! I can help you find flights, hotels, and plan your perfect trip.",
	"Greetings! I'm ready to assist with all your travel needs. What can I help you with today?",
}

var travelKeywords = []string{
	"travel", "trip", "vacation", "holiday", "journey", "tour",
	"visit", "explore", "destination", "itinerary", "plan",
}

// greetingKeywords feed scoring; greetingTriggers is the tighter subset
// that actually flips a request into the greeting branch.
var (
	greetingKeywords = []string{
		"hello", "hi", "hey", "greetings", "good morning", "good afternoon",
		"good evening", "howdy", "what's up", "how are you",
	}
	greetingTriggers = []string{"hello", "hi", "hey", "greetings", "howdy"}
)

// Confidence weights. The floor keeps this responder alive as a fallback
// even for requests that match nothing.
const (
	weightGreeting    = 0.7
	weightCategoryHit = 0.1
	confidenceFloor   = 0.1
)
