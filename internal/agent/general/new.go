package general

import (
	"math/rand"

	"rahalah/internal/agent"
	pkgLog "rahalah/pkg/log"
)

// Agent handles greetings and open-ended travel questions. It also serves
// as the fallback when no specialized responder claims a request.
type Agent struct {
	l       pkgLog.Logger
	rng     *rand.Rand
	context map[string]any
}

var _ agent.Responder = (*Agent)(nil)

// New creates a new general-conversation responder. The rng picks greeting
// variants and activity samples.
func New(l pkgLog.Logger, rng *rand.Rand) *Agent {
	return &Agent{
		l:       l,
		rng:     rng,
		context: make(map[string]any),
	}
}

// Name returns the responder's human-readable name.
func (a *Agent) Name() string { return "Travel Assistant" }
