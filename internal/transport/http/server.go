// Package http is the HTTP transport over the pool service.
package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dmarenin/amm-pool-service/internal/config"
	"github.com/dmarenin/amm-pool-service/internal/ledger"
	"github.com/dmarenin/amm-pool-service/internal/service"
)

// Server is the HTTP transport layer.
type Server struct {
	svc service.Service
	mux *http.ServeMux
	log *zap.Logger

	// faucet is only set on dev servers running the in-memory ledger.
	faucet *ledger.MemoryAssetLedger

	graceTimeout      time.Duration
	readHeaderTimeout time.Duration
	requestTimeout    time.Duration
}

// Option tweaks optional server features.
type Option func(*Server)

// WithFaucet enables POST /v1/faucet crediting the given in-memory ledger.
func WithFaucet(l *ledger.MemoryAssetLedger) Option {
	return func(s *Server) { s.faucet = l }
}

// NewServer creates an HTTP server with registered routes.
func NewServer(svc service.Service, cfg *config.Config, log *zap.Logger, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		svc: svc,
		mux: http.NewServeMux(),
		log: log,

		graceTimeout:      cfg.GraceTimeout,
		readHeaderTimeout: cfg.ReadHeaderTimeout,
		requestTimeout:    cfg.RequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("POST /v1/pools", s.handleCreatePool)
	s.mux.HandleFunc("POST /v1/deposit", s.handleDeposit)
	s.mux.HandleFunc("POST /v1/withdraw", s.handleWithdraw)
	s.mux.HandleFunc("POST /v1/swap", s.handleSwap)
	s.mux.HandleFunc("GET /v1/quote", s.handleQuote)
	if s.faucet != nil {
		s.mux.HandleFunc("POST /v1/faucet", s.handleFaucet)
	}
	s.mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("pong")); err != nil {
			log.Warn("ping write error", zap.Error(err))
		}
	})

	return s, nil
}

// Handler returns the routed handler with middleware applied. Exposed for
// httptest in transport tests.
func (s *Server) Handler() http.Handler {
	return s.logMiddleware(s.mux)
}

// ListenAndServe starts the HTTP server and blocks until a shutdown signal.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "listen")
	case <-stop:
	}

	s.log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), s.graceTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "srv.Shutdown")
	}
	s.log.Info("server stopped gracefully")
	return nil
}

// logMiddleware logs each request and the time taken to process it.
func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Duration("took", time.Since(start)),
		)
	})
}
