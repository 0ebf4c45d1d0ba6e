package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/calgrid/pkg/pipeline"
)

const (
	// DefaultMaxBodySize bounds request bodies.
	DefaultMaxBodySize = 4 << 20

	// DefaultMaxDays bounds the calendar range of one request (ten years).
	DefaultMaxDays = 3660

	// DefaultMaxEvents bounds the number of events in one request.
	DefaultMaxEvents = 1000
)

// BasicAuth holds HTTP basic auth credentials. Auth is disabled when either
// field is empty.
type BasicAuth struct {
	Username string
	Password string
}

// Config configures a [Server].
type Config struct {
	// Input is rendered at GET /. Empty disables the route.
	Input string

	// Render defaults applied to every request.
	Title    string
	Palette  []string
	Weekends bool

	BasicAuth   *BasicAuth
	MaxBodySize int64

	// MaxDays and MaxEvents limit the layout work of one request.
	// Zero means DefaultMaxDays and DefaultMaxEvents.
	MaxDays   int
	MaxEvents int
}

// Server serves the pipeline over HTTP.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New constructs a Server. A nil logger discards log output.
func New(cfg Config, runner *pipeline.Runner, logger *log.Logger) *Server {
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = DefaultMaxDays
	}
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = DefaultMaxEvents
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{cfg: cfg, runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Group(func(r chi.Router) {
		if s.basicAuthEnabled() {
			a := s.cfg.BasicAuth
			r.Use(middleware.BasicAuth("calgrid", map[string]string{a.Username: a.Password}))
		}
		r.Get("/", s.handleIndex)
		r.Route("/api", func(r chi.Router) {
			r.Post("/layout", s.handleLayout)
			r.Post("/render", s.handleRender)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "listen", "http://"+addr, "auth", s.basicAuthEnabled())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
