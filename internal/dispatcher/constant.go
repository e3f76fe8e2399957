package dispatcher

// selectionThreshold is the minimum confidence a responder needs to be
// invoked for a turn.
const selectionThreshold = 0.5

const (
	fallbackApology = "I apologize, but I'm not sure how to help with that specific request. Could you please provide more details about what you're looking for, or try a different query?"
	faultApology    = "I apologize, but I encountered an issue while processing your request. Please try again or rephrase your question. Error: %v"
)
