package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/NYTimes/gziphandler"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/randomapi/randomapi-go/internal/config"
	"github.com/randomapi/randomapi-go/internal/handler"
	"github.com/randomapi/randomapi-go/internal/metrics"
	"github.com/randomapi/randomapi-go/internal/middleware"
	"github.com/randomapi/randomapi-go/internal/random"
	"github.com/randomapi/randomapi-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	src := random.NewSource()
	if cfg.RandomSeed != nil {
		slog.Warn("using fixed random seed", "seed", *cfg.RandomSeed)
		src = random.NewSeededSource(*cfg.RandomSeed, 0)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	r := newRouter(cfg, src, m)

	var h http.Handler = r
	if cfg.EnableGzip {
		h = gziphandler.GzipHandler(h)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: h,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newRouter wires the random endpoints. m may be nil to disable metrics.
func newRouter(cfg config.Config, gen random.Generator, m *metrics.Metrics) chi.Router {
	var rec service.Recorder
	if m != nil {
		rec = m
	}
	randomService := service.NewRandomService(gen, rec)
	randomHandler := handler.NewRandomHandler(randomService, cfg.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/random", func(r chi.Router) {
		r.Get("/number", randomHandler.HandleNumber)
		r.Get("/decimal", randomHandler.HandleDecimal)
		r.Get("/string", randomHandler.HandleString)
		r.Post("/custom", randomHandler.HandleCustom)
	})

	return r
}
