package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"

	"github.com/renato0307/tabrest/internal/domain"
	"github.com/renato0307/tabrest/internal/logging"
	"github.com/renato0307/tabrest/internal/monitoring"
	"github.com/renato0307/tabrest/internal/services"
)

const shutdownTimeout = 5 * time.Second

// ActionHandler runs action requests
type ActionHandler interface {
	Handle(ctx context.Context, env services.ActionEnvelope) services.ActionResponse
}

// ConfigurationReader exposes the configuration to the pages
type ConfigurationReader interface {
	Configuration(ctx context.Context) (*domain.Configuration, error)
	Fields(includeHidden bool) []domain.ConfigField
}

// SessionStore lists and saves window layout snapshots
type SessionStore interface {
	List(ctx context.Context, kind domain.SessionKind) ([]domain.Session, error)
	SaveCurrent(ctx context.Context, name string) (domain.Session, error)
}

// TabLister lists the open tabs with their status
type TabLister interface {
	ListTabs(ctx context.Context) ([]services.TabView, error)
}

// Options configures the HTTP server
type Options struct {
	Debug      bool
	ListenAddr string
	RateLimit  float64
	Burst      int
}

// Deps are the services the handlers call into
type Deps struct {
	Actions  ActionHandler
	Config   ConfigurationReader
	Metrics  *monitoring.Metrics
	Sessions SessionStore
	Tabs     TabLister
}

// Server serves the placeholder and options pages and the action API
type Server struct {
	deps   Deps
	engine *gin.Engine
	opts   Options
	origin domain.Origin
}

// NewServer creates the server and registers every route
func NewServer(opts Options, origin domain.Origin, deps Deps) *Server {
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(metricsMiddleware(deps.Metrics))

	s := &Server{deps: deps, engine: engine, opts: opts, origin: origin}

	engine.GET("/healthz", s.health)
	engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	ext := engine.Group("/ext/:id", s.requireInstallation)
	ext.GET("/"+domain.PlaceholderPage, s.placeholderPage)
	ext.GET("/"+domain.OptionsPage, s.optionsPage)
	ext.GET("/icon.svg", s.icon)
	ext.GET("/info", s.placeholderInfo)

	api := engine.Group("/api", GlobalRateLimit(RateLimitConfig{
		RequestsPerSecond: opts.RateLimit,
		Burst:             opts.Burst,
	}))
	api.POST("/actions", s.handleAction)
	api.GET("/tabs", s.listTabs)
	api.GET("/status", s.status)
	api.POST("/sessions", s.saveSession)

	return s
}

// Handler returns the root handler with response compression
func (s *Server) Handler() http.Handler {
	return gzhttp.GzipHandler(s.engine)
}

// Run listens on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.ListenAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("HTTP server listening", "addr", listener.Addr().String(), "origin", string(s.origin))
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	logging.Logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireInstallation rejects pages addressed to another installation
func (s *Server) requireInstallation(c *gin.Context) {
	if c.Param("id") != s.origin.InstallationID() {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Next()
}
