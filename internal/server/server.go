// Package server implements the submission endpoint: POST /api/submit logs the
// payload and acknowledges it. Nothing is persisted.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const (
	SubmitPath = "/api/submit"

	defaultMaxBodyBytes = 1 << 20 // 1 MiB
	shutdownTimeout     = 5 * time.Second
)

// Server holds the endpoint's dependencies. Build it with New.
type Server struct {
	log     *slog.Logger
	metrics *Metrics
	newID   func() string
	maxBody int64
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithIDFunc replaces the submission id generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Server) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBody = n
		}
	}
}

func New(opts ...Option) *Server {
	s := &Server{
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		metrics: NewMetrics(),
		newID:   uuid.NewString,
		maxBody: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Metrics exposes the collectors so callers can serve them.
func (s *Server) Metrics() *Metrics { return s.metrics }

// Handler returns the routed endpoint.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverer)
	r.Post(SubmitPath, s.handleSubmit)
	r.MethodNotAllowed(s.handleMethodNotAllowed)
	return r
}

// Serve runs the endpoint on ln (and metrics on metricsLn, when non-nil) until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener, metricsLn net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	servers := []*http.Server{{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	listeners := []net.Listener{ln}

	if metricsLn != nil {
		servers = append(servers, &http.Server{
			Handler:           promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 10 * time.Second,
		})
		listeners = append(listeners, metricsLn)
	}

	for i := range servers {
		srv, l := servers[i], listeners[i]
		g.Go(func() error {
			s.log.Info("server.listening", "addr", l.Addr().String())
			if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		s.log.Info("server.stopped")
		return errors.Join(errs...)
	})

	return g.Wait()
}

// ListenAndServe binds addr (and metricsAddr, when set) then calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr, metricsAddr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	var mln net.Listener
	if metricsAddr != "" {
		mln, err = net.Listen("tcp", metricsAddr)
		if err != nil {
			_ = ln.Close()
			return err
		}
	}

	return s.Serve(ctx, ln, mln)
}
