// Package server exposes Mandelbrot views over HTTP.
//
// Stateless renders are served from /api/render.png. Interactive clients
// create a session, which owns an independent view with its own frame cache,
// and drive it with pointer events over plain HTTP or a websocket that
// streams PNG frames back.
package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mandelzoom/pkg/escape"
	"github.com/matzehuels/mandelzoom/pkg/plane"
	"github.com/matzehuels/mandelzoom/pkg/session"
	"github.com/matzehuels/mandelzoom/pkg/view"
)

// Defaults for Config fields left zero.
const (
	DefaultAddr            = ":8080"
	DefaultWidth           = 800
	DefaultCleanupInterval = time.Minute
	shutdownTimeout        = 5 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr            string
	SessionTTL      time.Duration
	CleanupInterval time.Duration

	// View defaults for new sessions and stateless renders.
	Width   int
	Depth   int
	Home    plane.Window
	Workers int

	// OriginPatterns lists hosts allowed to open websockets from another
	// origin. Empty allows same-origin only.
	OriginPatterns []string

	Logger *log.Logger
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = session.DefaultTTL
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = DefaultCleanupInterval
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Depth <= 0 {
		c.Depth = view.DefaultDepth
	}
	if !c.Home.Valid() {
		c.Home = plane.DefaultWindow
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Server serves the HTTP API.
type Server struct {
	cfg    Config
	store  session.Store
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by store. A nil store uses an in-memory one.
func New(cfg Config, store session.Store) *Server {
	cfg.setDefaults()
	if store == nil {
		store = session.NewMemoryStore()
	}
	s := &Server{
		cfg:    cfg,
		store:  store,
		logger: cfg.Logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/render.png", s.handleRender)
		r.Get("/regions", s.handleRegions)
		r.Post("/sessions", s.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Get("/frame.png", s.handleFrame)
			r.Post("/events", s.handleEvent)
			r.Put("/depth", s.handleDepth)
			r.Post("/reset", s.handleReset)
			r.Get("/ws", s.handleWebsocket)
		})
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on the configured address until ctx is canceled, then shuts
// down gracefully. Expired sessions are swept every CleanupInterval.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		// Websocket streams end with the serve context.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g.Go(func() error {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		s.janitor(ctx)
		return nil
	})
	return g.Wait()
}

// janitor removes expired sessions until ctx is done.
func (s *Server) janitor(ctx context.Context) {
	t := time.NewTicker(s.cfg.CleanupInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n, err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup failed", "err", err)
			} else if n > 0 {
				s.logger.Debug("expired sessions removed", "count", n, "live", s.store.Len())
			}
		}
	}
}

// newView mounts a view with the server's defaults.
func (s *Server) newView(width, height, depth int) *view.View {
	return view.New(width, height,
		view.WithRenderer(escape.Engine{Workers: s.cfg.Workers}),
		view.WithDepth(depth),
		view.WithHome(s.cfg.Home),
		view.WithLogger(s.logger),
	)
}
