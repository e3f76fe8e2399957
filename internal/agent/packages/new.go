package packages

import (
	"math/rand"

	"rahalah/internal/agent"
	pkgLog "rahalah/pkg/log"
)

// Agent handles combined flight-and-hotel package requests. It owns no
// extraction machinery of its own: routes and stay dates come from the
// flights and hotels extractors.
type Agent struct {
	l       pkgLog.Logger
	rng     *rand.Rand
	context map[string]any
}

var _ agent.Responder = (*Agent)(nil)

// New creates a new packages responder.
func New(l pkgLog.Logger, rng *rand.Rand) *Agent {
	return &Agent{
		l:       l,
		rng:     rng,
		context: make(map[string]any),
	}
}

// Name returns the responder's human-readable name.
func (a *Agent) Name() string { return "Package Expert" }
