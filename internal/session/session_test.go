package session_test

import (
	"context"
	"testing"

	"rahalah/internal/dispatcher"
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

func newManager(t *testing.T, size int) *session.Manager {
	t.Helper()
	m, err := session.NewManager(nopLogger{}, size, func() *dispatcher.Dispatcher {
		return dispatcher.New(nopLogger{})
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestResolve(t *testing.T) {
	t.Run("Empty ID Starts A New Session", func(t *testing.T) {
		m := newManager(t, 4)
		id, d := m.Resolve("")
		if id == "" {
			t.Fatal("expected a generated session id")
		}
		if d == nil {
			t.Fatal("expected a dispatcher")
		}

		again, d2 := m.Resolve(id)
		if again != id {
			t.Errorf("id changed on second resolve: %s vs %s", again, id)
		}
		if d2 != d {
			t.Error("expected the same dispatcher for the same session id")
		}
	})

	t.Run("Distinct Sessions Get Distinct Dispatchers", func(t *testing.T) {
		m := newManager(t, 4)
		_, d1 := m.Resolve("")
		_, d2 := m.Resolve("")
		if d1 == d2 {
			t.Error("two sessions share one dispatcher")
		}
	})

	t.Run("Capacity Evicts The Oldest Session", func(t *testing.T) {
		m := newManager(t, 2)
		first, _ := m.Resolve("")
		m.Resolve("")
		m.Resolve("")

		if _, ok := m.Lookup(first); ok {
			t.Error("oldest session survived past capacity")
		}
		if got := m.Len(); got != 2 {
			t.Errorf("len = %d, want 2", got)
		}
	})
}
