// Package bridgesrv serves the privileged bridge: the only channel through
// which the isolated client may reach host capabilities. Every operation
// is named, allow-listed, and answered; nothing else crosses the boundary.
package bridgesrv

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/avolkovs/vitrina/internal/host/securestore"
	"github.com/avolkovs/vitrina/internal/logging"
	"github.com/go-chi/chi/v5"
)

// Server hosts the bridge endpoints. The bind address must stay on
// loopback; the bridge carries secrets and has no authentication of its
// own.
type Server struct {
	address string
	secure  *securestore.Store
	logger  logging.Logger
	getenv  func(string) string
}

func NewServer(address string, secure *securestore.Store, logger logging.Logger) *Server {
	return &Server{
		address: address,
		secure:  secure,
		logger:  logger.With("module", "bridge_server"),
		getenv:  os.Getenv,
	}
}

// Run serves the bridge until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping bridge server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting bridge server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Routes mounts one POST route per bridge operation.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/bridge", func(r chi.Router) {
		r.Post("/get-env", s.handleGetEnv)
		r.Post("/set-secure-storage", s.handleSetSecureStorage)
		r.Post("/get-secure-storage", s.handleGetSecureStorage)
		r.Post("/delete-secure-storage", s.handleDeleteSecureStorage)
		r.Post("/get-app-version", s.handleGetAppVersion)
		r.Post("/get-app-path", s.handleGetAppPath)
	})

	return r
}
