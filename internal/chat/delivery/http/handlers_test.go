package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"rahalah/internal/agent"
	"rahalah/internal/agent/flights"
	"rahalah/internal/agent/general"
	"rahalah/internal/agent/hotels"
	"rahalah/internal/agent/packages"
	chatHTTP "rahalah/internal/chat/delivery/http"
	"rahalah/internal/dispatcher"
	"rahalah/internal/middleware"
	"rahalah/internal/session"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

func newDispatcher() *dispatcher.Dispatcher {
	d := dispatcher.New(nopLogger{})
	d.Register(agent.IDFlights, flights.New(nopLogger{}, rand.New(rand.NewSource(1))))
	d.Register(agent.IDHotels, hotels.New(nopLogger{}, rand.New(rand.NewSource(1))))
	d.Register(agent.IDGeneral, general.New(nopLogger{}, rand.New(rand.NewSource(1))))
	d.Register(agent.IDPackages, packages.New(nopLogger{}, rand.New(rand.NewSource(1))))
	return d
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions, err := session.NewManager(nopLogger{}, 16, newDispatcher)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	h := chatHTTP.New(nopLogger{}, sessions, newDispatcher())

	engine := gin.New()
	chatHTTP.RegisterRoutes(engine.Group("/api/v1"), h, middleware.New(nopLogger{}, 0))
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.ErrorCode != 0 {
		t.Fatalf("error_code = %d, message %q", env.ErrorCode, env.Message)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func TestProcessEndpoint(t *testing.T) {
	t.Run("Missing Message Is Rejected", func(t *testing.T) {
		w := postJSON(t, newRouter(t), "/api/v1/chat", map[string]string{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Turn Returns Reply And Session ID", func(t *testing.T) {
		w := postJSON(t, newRouter(t), "/api/v1/chat", map[string]string{
			"message": "flight from dammam to dubai tomorrow",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
		}

		var data struct {
			SessionID     string `json:"session_id"`
			Response      string `json:"response"`
			Type          string `json:"type"`
			FlightResults []any  `json:"flight_results"`
			HotelResults  []any  `json:"hotel_results"`
		}
		decodeEnvelope(t, w, &data)

		if data.SessionID == "" {
			t.Error("expected a session id")
		}
		if data.Response == "" {
			t.Error("expected reply content")
		}
		if data.Type != "flights" {
			t.Errorf("type = %q, want flights", data.Type)
		}
		if len(data.FlightResults) == 0 {
			t.Error("expected flight results")
		}
		if data.HotelResults == nil {
			t.Error("hotel bucket must be present even when empty")
		}
	})

	t.Run("Session ID Is Stable Across Turns", func(t *testing.T) {
		engine := newRouter(t)

		w := postJSON(t, engine, "/api/v1/chat", map[string]string{"message": "hello"})
		var first struct {
			SessionID string `json:"session_id"`
		}
		decodeEnvelope(t, w, &first)

		w = postJSON(t, engine, "/api/v1/chat", map[string]string{
			"message":    "flight from dammam to dubai",
			"session_id": first.SessionID,
		})
		var second struct {
			SessionID string `json:"session_id"`
		}
		decodeEnvelope(t, w, &second)

		if second.SessionID != first.SessionID {
			t.Errorf("session id changed: %s vs %s", second.SessionID, first.SessionID)
		}
	})
}

func TestConfidenceEndpoint(t *testing.T) {
	w := postJSON(t, newRouter(t), "/api/v1/chat/confidence", map[string]string{
		"message": "flight from dammam to dubai",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var data struct {
		Scores map[string]float64 `json:"scores"`
	}
	decodeEnvelope(t, w, &data)

	if len(data.Scores) != 4 {
		t.Errorf("scores = %v, want all four responders", data.Scores)
	}
	if data.Scores["flights"] < 0.5 {
		t.Errorf("flights score = %f, want >= 0.5", data.Scores["flights"])
	}
}

func TestHistoryEndpoint(t *testing.T) {
	engine := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/no-such-session/history", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown session", w.Code)
	}

	w2 := postJSON(t, engine, "/api/v1/chat", map[string]string{"message": "hello"})
	var turn struct {
		SessionID string `json:"session_id"`
	}
	decodeEnvelope(t, w2, &turn)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/chat/"+turn.SessionID+"/history", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var data struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	decodeEnvelope(t, w, &data)

	if len(data.Messages) != 2 {
		t.Fatalf("messages = %d, want user turn plus reply", len(data.Messages))
	}
	if data.Messages[0].Role != "user" || data.Messages[1].Role != "assistant" {
		t.Errorf("roles = %s/%s, want user/assistant", data.Messages[0].Role, data.Messages[1].Role)
	}
}
