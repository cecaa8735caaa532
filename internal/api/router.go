package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/internal/api/handlers"
	mw "github.com/Harshitk-cp/voicebridge/internal/api/middleware"
	"github.com/Harshitk-cp/voicebridge/internal/buildconfig"
	"github.com/Harshitk-cp/voicebridge/voice"
)

const rateLimitCleanupInterval = 10 * time.Minute

// Options configures the gateway. A zero RateLimitRPS disables rate limiting.
type Options struct {
	Token          string
	RateLimitRPS   float64
	RateLimitBurst int
}

// App holds the router and the state its background work needs on shutdown.
type App struct {
	Router    *chi.Mux
	Registry  *voice.Registry
	metrics   *mw.MetricsCollector
	limiter   *mw.RateLimiter
	startTime time.Time
}

func NewApp(registry *voice.Registry, logger *zap.Logger, opts Options) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	providerHandler := handlers.NewProviderHandler(registry)
	agentHandler := handlers.NewAgentHandler(logger)
	callHandler := handlers.NewCallHandler(logger)
	phoneNumberHandler := handlers.NewPhoneNumberHandler(logger)
	toolHandler := handlers.NewToolHandler(logger)
	fileHandler := handlers.NewFileHandler(logger)
	kbHandler := handlers.NewKnowledgeBaseHandler(logger)

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		Registry:  registry,
		metrics:   mw.NewMetricsCollector(),
		startTime: time.Now(),
	}

	// Order matters: the request id must exist before logging reads it.
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	if opts.RateLimitRPS > 0 {
		app.limiter = mw.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
		app.limiter.StartCleanup(rateLimitCleanupInterval)
		r.Use(mw.RateLimit(app.limiter))
	}

	r.Get("/health", app.healthHandler())
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.BearerToken(opts.Token))

		r.Get("/providers", providerHandler.List)
		r.Route("/providers/{provider}", func(r chi.Router) {
			r.Use(providerHandler.Resolve)
			r.Get("/", providerHandler.Get)

			r.Route("/agents", func(r chi.Router) {
				r.Use(handlers.Require(voice.CapabilityAgents))
				r.Post("/", agentHandler.Create)
				r.Get("/", agentHandler.List)
				r.Get("/{id}", agentHandler.Get)
				r.Patch("/{id}", agentHandler.Update)
				r.Delete("/{id}", agentHandler.Delete)
			})

			r.Route("/calls", func(r chi.Router) {
				r.Use(handlers.Require(voice.CapabilityCalls))
				r.Post("/", callHandler.Create)
				r.Get("/", callHandler.List)
				r.Get("/{id}", callHandler.Get)
				r.Patch("/{id}", callHandler.Update)
				r.Delete("/{id}", callHandler.Delete)
			})

			r.Route("/phone-numbers", func(r chi.Router) {
				r.Use(handlers.Require(voice.CapabilityPhoneNumbers))
				r.Get("/", phoneNumberHandler.List)
				r.Get("/{id}", phoneNumberHandler.Get)
				r.Group(func(r chi.Router) {
					r.Use(handlers.Require(voice.CapabilityPhoneProvisioning))
					r.Post("/", phoneNumberHandler.Create)
					r.Patch("/{id}", phoneNumberHandler.Update)
					r.Delete("/{id}", phoneNumberHandler.Delete)
				})
			})

			r.Route("/tools", func(r chi.Router) {
				r.Use(handlers.Require(voice.CapabilityTools))
				r.Post("/", toolHandler.Create)
				r.Get("/", toolHandler.List)
				r.Get("/{id}", toolHandler.Get)
				r.Patch("/{id}", toolHandler.Update)
				r.Delete("/{id}", toolHandler.Delete)
			})

			r.Route("/files", func(r chi.Router) {
				r.Use(handlers.Require(voice.CapabilityFiles))
				r.Post("/", fileHandler.Create)
				r.Get("/", fileHandler.List)
				r.Get("/{id}", fileHandler.Get)
				r.Patch("/{id}", fileHandler.Update)
				r.Delete("/{id}", fileHandler.Delete)
			})

			r.Route("/knowledge-bases", func(r chi.Router) {
				r.Use(handlers.Require(voice.CapabilityKnowledgeBase))
				r.Post("/", kbHandler.Create)
				r.Get("/", kbHandler.List)
				r.Get("/{id}", kbHandler.Get)
				r.Delete("/{id}", kbHandler.Delete)
			})
		})
	})

	return app
}

// Close stops background work started by NewApp.
func (app *App) Close() {
	if app.limiter != nil {
		app.limiter.Stop()
	}
}

func (app *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"providers": app.Registry.IDs(),
			"version":   buildconfig.Version(),
		})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)
		writeJSON(w, http.StatusOK, map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"requests":       app.metrics.Snapshot(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"build":      buildconfig.VersionInfo(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
