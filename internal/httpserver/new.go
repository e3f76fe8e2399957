package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rahalah/internal/dispatcher"
	"rahalah/internal/session"
	pkgLog "rahalah/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	rateLimitPerMin int
	sessions        *session.Manager
	scorer          *dispatcher.Dispatcher
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int
	SessionManager  *session.Manager
	Scorer          *dispatcher.Dispatcher
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		sessions:        cfg.SessionManager,
		scorer:          cfg.Scorer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	if srv.scorer == nil {
		return errors.New("scorer is required")
	}
	return nil
}
