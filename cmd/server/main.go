/*
main.go - Application entry point

PURPOSE:
  Starts the goal projection HTTP service. Handles configuration, router
  wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration from the environment
  2. Apply command-line flag overrides
  3. Create API handler and router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port         HTTP server port (default: $GOALS_PORT or 8080)
  -max-horizon  Largest horizon in months (default: $GOALS_MAX_HORIZON_MONTHS or 1200)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete ($GOALS_SHUTDOWN_TIMEOUT)
  3. Exit

EXAMPLES:
  ./server
  ./server -port=3001
  GOALS_ALLOWED_ORIGINS=https://app.example ./server

SEE ALSO:
  - config/config.go: Environment variables
  - api/server.go: Router configuration
*/
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/goal-engine/api"
	"github.com/warp/goal-engine/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override the environment
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.IntVar(&cfg.MaxHorizonMonths, "max-horizon", cfg.MaxHorizonMonths, "Largest simulation horizon in months")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	handler := api.NewHandler(cfg.MaxHorizonMonths)
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Goal engine listening on http://localhost%s", cfg.Addr())
		log.Printf("CORS origins: %v, max horizon: %d months", cfg.AllowedOrigins, cfg.MaxHorizonMonths)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
