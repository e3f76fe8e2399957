package http

import (
	"github.com/gin-gonic/gin"

	"rahalah/internal/dispatcher"
	"rahalah/internal/session"
	pkgLog "rahalah/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	Confidence(c *gin.Context)
	History(c *gin.Context)
	Preferences(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	sessions *session.Manager
	scorer   *dispatcher.Dispatcher
}

// New creates a new HTTP handler for the chat domain. scorer is a dispatcher
// used only for confidence introspection, so scoring requests never touch
// the session store.
func New(l pkgLog.Logger, sessions *session.Manager, scorer *dispatcher.Dispatcher) *handler {
	return &handler{
		l:        l,
		sessions: sessions,
		scorer:   scorer,
	}
}
