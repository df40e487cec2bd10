// Package httpserver exposes the services over HTTP/JSON with gin.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/electro/internal/logging"
	"github.com/dmitrijs2005/electro/internal/server/config"
	"github.com/dmitrijs2005/electro/internal/server/services"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the handlers' dependencies.
type Services struct {
	Locator  *services.Locator
	Resolver *services.Resolver
	Catalog  *services.CatalogService
	Users    *services.UserService
	Carts    *services.CartService
	Store    Pinger
}

type HTTPServer struct {
	address       string
	logger        logging.Logger
	svc           Services
	jwtSecret     []byte
	listRoutes    map[string]string
	recentlyAdded string
	now           func() time.Time
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, svc Services) (*HTTPServer, error) {
	if svc.Locator == nil || svc.Resolver == nil || svc.Catalog == nil ||
		svc.Users == nil || svc.Carts == nil || svc.Store == nil {
		return nil, errors.New("http server: missing service")
	}
	return &HTTPServer{
		address:       cfg.EndpointAddrHTTP,
		logger:        l.With("module", "http_server"),
		svc:           svc,
		jwtSecret:     []byte(cfg.SecretKey),
		listRoutes:    cfg.ListRoutes,
		recentlyAdded: cfg.RecentlyAddedPartition,
		now:           time.Now,
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	stopped := make(chan struct{})
	shutdownErr := make(chan error, 1)
	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			shutdownErr <- nil
			return
		}
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	// Serve returns as soon as Shutdown starts; in-flight requests are only
	// drained once Shutdown itself returns.
	if err := srv.Serve(listen); !errors.Is(err, http.ErrServerClosed) {
		close(stopped)
		<-shutdownErr
		return err
	}

	if err := <-shutdownErr; err != nil {
		s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		return err
	}
	return nil
}
