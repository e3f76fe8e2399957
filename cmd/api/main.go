package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rahalah/config"
	_ "rahalah/docs" // Swagger docs
	"rahalah/internal/agent"
	"rahalah/internal/agent/flights"
	"rahalah/internal/agent/general"
	"rahalah/internal/agent/hotels"
	"rahalah/internal/agent/packages"
	"rahalah/internal/dispatcher"
	"rahalah/internal/httpserver"
	"rahalah/internal/session"
	"rahalah/pkg/log"
)

// @title       Rahalah Travel Assistant API
// @description Rule-based request router for a travel-assistant chat: flights, hotels, packages, and general travel help.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Environment & configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Rahalah travel assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Dispatcher factory: each conversation gets its own responder set so
	// per-session context never bleeds across sessions.
	seeds := newSeedSequence(cfg.Assistant.RandomSeed)
	newDispatcher := func() *dispatcher.Dispatcher {
		d := dispatcher.New(logger)
		d.Register(agent.IDFlights, flights.New(logger, rand.New(rand.NewSource(seeds.next()))))
		d.Register(agent.IDHotels, hotels.New(logger, rand.New(rand.NewSource(seeds.next()))))
		d.Register(agent.IDGeneral, general.New(logger, rand.New(rand.NewSource(seeds.next()))))
		d.Register(agent.IDPackages, packages.New(logger, rand.New(rand.NewSource(seeds.next()))))
		return d
	}

	// 4. Session store
	sessions, err := session.NewManager(logger, cfg.Assistant.SessionCacheSize, newDispatcher)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session manager: ", err)
		return
	}

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.Assistant.RateLimitPerMin,
		SessionManager:  sessions,
		Scorer:          newDispatcher(),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// seedSequence hands out distinct seeds for the responder generators. A
// configured base seed makes runs reproducible; otherwise the clock seeds it.
type seedSequence struct {
	counter atomic.Int64
	base    int64
}

func newSeedSequence(base int64) *seedSequence {
	if base == 0 {
		base = time.Now().UnixNano()
	}
	return &seedSequence{base: base}
}

func (s *seedSequence) next() int64 {
	return s.base + s.counter.Add(1)
}
