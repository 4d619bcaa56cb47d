package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ledgercore/ledger-core/common"
	"github.com/ledgercore/ledger-core/common/mlog"
)

// Server wraps the fiber app as a common.App so the Launcher can run it
// alongside the integrity monitor.
type Server struct {
	app           *fiber.App
	serverAddress string
	logger        mlog.Logger
}

// NewServer returns a Server bound to app, listening on cfg.ServerAddress
// (defaulting to :3001 when unset).
func NewServer(cfg *Config, app *fiber.App, logger mlog.Logger) *Server {
	addr := cfg.ServerAddress
	if addr == "" {
		addr = ":3001"
	}

	return &Server{app: app, serverAddress: addr, logger: logger}
}

// ServerAddress returns the address Run listens on.
func (s *Server) ServerAddress() string {
	return s.serverAddress
}

// Run starts the HTTP server and blocks until the listener closes. The
// Launcher already runs every App in its own goroutine, so Run only needs
// to own the listen-and-report half; Shutdown owns the graceful drain.
func (s *Server) Run(_ *common.Launcher) error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.app.Listen(s.serverAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}

		errCh <- nil
	}()

	s.logger.Infof("HTTP server listening on %s", s.serverAddress)

	return <-errCh
}

// Shutdown gracefully drains in-flight requests, giving callers (tests,
// signal handlers added by an embedding deployment) an explicit stop path
// distinct from Run's block-until-closed behavior.
func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan error, 1)

	go func() { done <- s.app.ShutdownWithTimeout(15 * time.Second) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
