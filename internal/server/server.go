package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/0xReLogic/greeter/internal/config"
	"github.com/0xReLogic/greeter/internal/logging"
)

const (
	// Port is the fixed listening port for every variant.
	Port = 3000
	// Addr is the listen address for Port.
	Addr = ":3000"
)

const (
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

func timeout(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// New creates the HTTP server for handler, wrapped with request logging.
func New(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         Addr,
		Handler:      logging.RequestContextMiddleware(cfg.Logging)(handler),
		ReadTimeout:  timeout(cfg.Server.Timeouts.Read, defaultReadTimeout),
		WriteTimeout: timeout(cfg.Server.Timeouts.Write, defaultWriteTimeout),
		IdleTimeout:  timeout(cfg.Server.Timeouts.Idle, defaultIdleTimeout),
	}
}

// Run binds srv.Addr and serves until the process is terminated.
// Bind failures are returned before anything is served.
func Run(srv *http.Server, variant string) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", srv.Addr, err)
	}
	return Serve(ln, srv, variant)
}

// Serve logs the startup line and serves srv on ln.
func Serve(ln net.Listener, srv *http.Server, variant string) error {
	logStartupInfo(ln.Addr(), srv, variant)

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func logStartupInfo(addr net.Addr, srv *http.Server, variant string) {
	logger := logging.L()

	port := Port
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = tcp.Port
	}

	logger.Info().
		Str("variant", variant).
		Int("port", port).
		Msgf("Server is running on http://localhost:%d", port)
	logger.Debug().
		Dur("read_timeout", srv.ReadTimeout).
		Dur("write_timeout", srv.WriteTimeout).
		Dur("idle_timeout", srv.IdleTimeout).
		Msg("server timeouts configured")
}
