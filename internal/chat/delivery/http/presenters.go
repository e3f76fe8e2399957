package http

import (
	"rahalah/internal/agent"
	"rahalah/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	Message   string         `json:"message" binding:"required"`
	SessionID string         `json:"session_id"`
	Context   map[string]any `json:"context"`
}

type confidenceReq struct {
	Message string `json:"message" binding:"required"`
}

// --- Response DTOs ---

// processResp is the chat wire shape. The result buckets are always present,
// empty when a domain contributed nothing to the turn.
type processResp struct {
	SessionID      string         `json:"session_id"`
	Response       string         `json:"response"`
	Type           agent.Kind     `json:"type"`
	FlightResults  []agent.Result `json:"flight_results"`
	HotelResults   []agent.Result `json:"hotel_results"`
	PackageResults []agent.Result `json:"package_results"`
}

// newProcessResp flattens a dispatcher reply onto the wire. A structured
// single-responder reply lands in its domain's bucket; a consolidated reply
// already carries its buckets.
func newProcessResp(sessionID string, reply agent.Reply) processResp {
	resp := processResp{
		SessionID:      sessionID,
		Response:       reply.Content,
		Type:           reply.Kind,
		FlightResults:  []agent.Result{},
		HotelResults:   []agent.Result{},
		PackageResults: []agent.Result{},
	}

	switch reply.Kind {
	case agent.KindFlights:
		resp.FlightResults = reply.Results
	case agent.KindHotels:
		resp.HotelResults = reply.Results
	case agent.KindPackages:
		resp.PackageResults = reply.Results
	}

	if len(reply.FlightResults) > 0 {
		resp.FlightResults = reply.FlightResults
	}
	if len(reply.HotelResults) > 0 {
		resp.HotelResults = reply.HotelResults
	}
	if len(reply.PackageResults) > 0 {
		resp.PackageResults = reply.PackageResults
	}

	return resp
}

type confidenceResp struct {
	Scores map[agent.ID]float64 `json:"scores"`
}

type historyResp struct {
	SessionID string          `json:"session_id"`
	Messages  []model.Message `json:"messages"`
}

type preferencesResp struct {
	SessionID   string         `json:"session_id"`
	Preferences map[string]any `json:"preferences"`
}
