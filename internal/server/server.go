package server

import (
	"context"
	"net/http"
	"time"

	"github.com/hic-health/hic-be/internal/auth"
	"github.com/hic-health/hic-be/internal/config"
	"github.com/hic-health/hic-be/internal/http/handlers"
	"github.com/hic-health/hic-be/internal/middleware"
	"github.com/hic-health/hic-be/internal/session"
	"github.com/hic-health/hic-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner   *http.Server
	limiter *middleware.RateLimiter
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store) *Server {
	expose := !cfg.IsProduction()
	mux := http.NewServeMux()

	health := handlers.NewHealthHandler(time.Now())
	health.Register(mux)

	users := handlers.NewUserHandler(store, expose)
	users.Register(mux)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	limiter := middleware.NewRateLimiter(cfg.LoginRate, cfg.LoginBurst)
	authHandler := handlers.NewAuthHandler(Lookup(cfg, store), tokens, cfg.LoginDelay, cfg.IsProduction())
	authHandler.Register(mux, limiter.Limit)

	dashboards := handlers.NewDashboardHandler(store, expose)
	dashboards.Register(mux)

	mux.HandleFunc("/", handlers.NotFound)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(middleware.Authenticate(tokens, mux)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer, limiter: limiter}
}

// Lookup picks the credential source named by AUTH_MODE.
func Lookup(cfg config.Config, store storage.UserStore) session.CredentialLookup {
	if cfg.AuthMode == config.AuthModeDemo {
		return session.DefaultDemoTable()
	}
	return session.StoreLookup{Users: store}
}

// Handler exposes the fully wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.inner.Shutdown(ctx)
}
