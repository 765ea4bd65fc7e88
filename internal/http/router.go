// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns:
// tracing, correlation IDs, logging with redaction, panic recovery,
// metrics, CORS, security headers, rate limiting, and bearer auth. It also
// serves the demo frontend with an SPA fallback.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per user/IP)
//  8. CORS and security headers
package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/synthhearts/synthhearts/internal/auth"
	"github.com/synthhearts/synthhearts/internal/config"
	"github.com/synthhearts/synthhearts/internal/http/handlers"
	"github.com/synthhearts/synthhearts/internal/http/middleware"
	"github.com/synthhearts/synthhearts/internal/services"
)

// Deps carries the shared infrastructure the router injects into services.
type Deps struct {
	DB        *gorm.DB
	Tokens    *auth.Manager
	Rand      *services.Rand
	Scheduler services.Scheduler
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given
// Gin engine: the public auth and feed routes, the bearer-gated app
// surface, health and metrics endpoints, and the static SPA fallback.
func RegisterRoutes(r *gin.Engine, deps Deps, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB); payloads are small JSON documents
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 8) CORS posture (allow all when no origins configured, as befits a
	// public demo)
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false, // must remain false with AllowAllOrigins
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: services ← db/tokens/rand/scheduler
	authSvc := &services.AuthService{DB: deps.DB, Tokens: deps.Tokens, Rand: deps.Rand}
	profileSvc := &services.ProfileService{DB: deps.DB}
	discoverSvc := &services.DiscoveryService{DB: deps.DB, Rand: deps.Rand}
	matchSvc := &services.MatchService{DB: deps.DB}
	chatSvc := &services.ChatService{
		DB:         deps.DB,
		Rand:       deps.Rand,
		Scheduler:  deps.Scheduler,
		ReplyDelay: cfg.ReplyDelay,
	}
	publicSvc := &services.PublicService{DB: deps.DB, Rand: deps.Rand}

	h := handlers.New(authSvc, profileSvc, discoverSvc, matchSvc, chatSvc, publicSvc)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Auth (public)
		api.GET("/auth/verify-question", h.VerifyQuestion)
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Public feed; transcripts compress well
		public := api.Group("/public", gzip.Gzip(gzip.DefaultCompression))
		{
			public.GET("/conversations", h.PublicConversations)
			public.GET("/stats", h.PublicStats)
			public.GET("/featured", h.PublicFeatured)
		}

		// Authenticated app surface
		app := api.Group("", middleware.RequireAuth(deps.Tokens))
		{
			app.GET("/profile", h.GetProfile)
			app.POST("/profile", h.SaveProfile)
			app.GET("/discover", h.Discover)
			app.POST("/swipe", h.Swipe)
			app.GET("/matches", h.ListMatches)
			app.GET("/chat/:matchId", h.ChatHistory)
			app.POST("/chat/:matchId", h.SendMessage)
		}
	}

	registerFrontend(r, cfg)
}

// registerFrontend serves the demo frontend from cfg.PublicDir with an SPA
// fallback to index.html. API and metrics paths never fall through to it.
func registerFrontend(r *gin.Engine, cfg config.Config) {
	dir := cfg.PublicDir
	index := filepath.Join(dir, "index.html")

	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(p, cfg.APIBasePath+"/") ||
			p == "/metrics" || p == "/health" {
			handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
			return
		}

		// Serve a real static file when one exists, index.html otherwise.
		candidate := filepath.Join(dir, filepath.Clean("/"+p))
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			c.File(candidate)
			return
		}
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
}

// limitBody caps the request body size using http.MaxBytesReader. Reads
// beyond the cap error downstream.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
