package dispatcher

import (
	"sync"

	"rahalah/internal/agent"
	"rahalah/internal/model"
	pkgLog "rahalah/pkg/log"
)

// Dispatcher routes user turns to registered responders and merges their
// replies. It owns the per-conversation state: history, accumulated context,
// and extracted preferences. All mutation happens under mu so one dispatcher
// can safely back one concurrent session.
type Dispatcher struct {
	l pkgLog.Logger

	mu          sync.Mutex
	ids         []agent.ID
	responders  map[agent.ID]agent.Responder
	history     []model.Message
	context     map[string]any
	preferences map[string]any
}

// New creates an empty dispatcher. Responders are attached with Register;
// registration order is the tie-break order during selection.
func New(l pkgLog.Logger) *Dispatcher {
	return &Dispatcher{
		l:           l,
		responders:  make(map[agent.ID]agent.Responder),
		context:     make(map[string]any),
		preferences: make(map[string]any),
	}
}

// Register attaches a responder under the given id. Re-registering an id
// replaces the responder but keeps its original position.
func (d *Dispatcher) Register(id agent.ID, r agent.Responder) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.responders[id]; !ok {
		d.ids = append(d.ids, id)
	}
	d.responders[id] = r
}
