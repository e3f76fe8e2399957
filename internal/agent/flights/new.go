package flights

import (
	"math/rand"

	"rahalah/internal/agent"
	pkgLog "rahalah/pkg/log"
)

// Agent handles flight search requests.
type Agent struct {
	l       pkgLog.Logger
	rng     *rand.Rand
	context map[string]any
}

var _ agent.Responder = (*Agent)(nil)

// New creates a new flights responder. The rng drives mock result
// generation only; it never influences extraction or scoring.
func New(l pkgLog.Logger, rng *rand.Rand) *Agent {
	return &Agent{
		l:       l,
		rng:     rng,
		context: make(map[string]any),
	}
}

// Name returns the responder's human-readable name.
func (a *Agent) Name() string { return "Flights Expert" }
