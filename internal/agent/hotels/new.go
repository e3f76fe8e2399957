package hotels

import (
	"math/rand"

	"rahalah/internal/agent"
	pkgLog "rahalah/pkg/log"
)

// Agent handles hotel search requests.
type Agent struct {
	l       pkgLog.Logger
	rng     *rand.Rand
	context map[string]any
}

var _ agent.Responder = (*Agent)(nil)

// New creates a new hotels responder.
func New(l pkgLog.Logger, rng *rand.Rand) *Agent {
	return &Agent{
		l:       l,
		rng:     rng,
		context: make(map[string]any),
	}
}

// Name returns the responder's human-readable name.
func (a *Agent) Name() string { return "Hotels Expert" }
