// Package display is the interactive surface for a run: a local HTTP server
// that renders the stacked charts on request. Nothing is written to disk.
package display

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"energy-sim/internal/api"
	"energy-sim/internal/model"
	"energy-sim/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DefaultAddr binds to loopback only.
const DefaultAddr = "127.0.0.1:8090"

// runTTL keeps the displayed run alive for the lifetime of the process.
const runTTL = 24 * time.Hour

const shutdownTimeout = 5 * time.Second

type Server struct {
	runs   *store.RunStore
	router *gin.Engine
	logger zerolog.Logger
}

func New(defaults model.Params, logger zerolog.Logger) *Server {
	runs := store.New(runTTL)
	return &Server{
		runs: runs,
		router: api.NewRouter(api.Options{
			Logger:   logger,
			Runs:     runs,
			Defaults: defaults,
		}),
		logger: logger.With().Str("component", "display").Logger(),
	}
}

// Show registers res and returns the page path that displays it.
func (s *Server) Show(res *model.RunResult) string {
	return "/runs/" + s.runs.Put(res)
}

// Handler exposes the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Serve handles requests on ln until ctx is cancelled, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("display shutdown: %w", err)
		}
		s.logger.Debug().Msg("display stopped")
		return nil
	}
}

// Open serves res on addr and logs the URL to open. It blocks until ctx is
// cancelled.
func (s *Server) Open(ctx context.Context, addr string, res *model.RunResult) error {
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("display listen %s: %w", addr, err)
	}
	url := fmt.Sprintf("http://%s%s", ln.Addr().String(), s.Show(res))
	s.logger.Info().Str("url", url).Msg("charts ready, open in a browser (Ctrl-C to stop)")
	return s.Serve(ctx, ln)
}
