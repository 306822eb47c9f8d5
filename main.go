package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/augray/ray/internal/config"
	"github.com/augray/ray/internal/database"
	"github.com/augray/ray/internal/handlers"
	"github.com/augray/ray/internal/logging"
	"github.com/augray/ray/internal/middleware"
	"github.com/augray/ray/internal/nodes"
)

func main() {
	config.Load()
	logging.Init()
	defer logging.Close()

	if err := database.Init(); err != nil {
		log.Fatalf("Database init: %v", err)
	}
	defer database.Close()

	if config.Cfg.NodesFile != "" {
		if _, err := nodes.LoadSeedFile(config.Cfg.NodesFile); err != nil {
			log.Fatalf("Node seed: %v", err)
		}
	}

	pruner, err := nodes.StartPruner(config.Cfg.PruneSchedule, config.Cfg.NodeTTL)
	if err != nil {
		log.Fatalf("Node pruner: %v", err)
	}

	handlers.ProxyClient = &http.Client{Timeout: config.Cfg.ProxyTimeout}

	srv := &http.Server{
		Addr:    config.Cfg.ListenAddr,
		Handler: newRouter(),
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Dashboard starting on %s", config.Cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-sigCtx.Done()
	log.Println("Shutting down...")

	if pruner != nil {
		<-pruner.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Dashboard stopped")
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", handlers.HealthCheck)

	// Log viewer wire contract
	r.Get("/log_index", handlers.LogIndex)
	r.Get("/log_proxy", handlers.LogProxy)

	r.Route("/api", func(r chi.Router) {
		r.Get("/nodes", handlers.ListNodes)

		// Admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth)

			r.Post("/nodes", handlers.RegisterNode)
			r.Delete("/nodes/{nodeID}", handlers.DeleteNode)
			r.Get("/server-logs", handlers.GetServerLogs)
			r.Delete("/server-logs", handlers.ClearServerLogs)
		})
	})

	return r
}
