package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-planner/internal/config"
	"github.com/adanyl0v/go-planner/internal/delivery/http/v1"
)

// MustListenAndServeHTTP serves the API until SIGINT or SIGTERM.
func MustListenAndServeHTTP() {
	cfg := config.Global()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: newRouter(cfg.Env),
	}
	if err := serveHTTP(ctx, server, cfg.HTTP.ShutdownTimeout); err != nil {
		globalLogger.Error().
			Err(err).
			Str("addr", server.Addr).
			Msg("http server stopped with error")
		panic(err)
	}
}

func newRouter(env string) *gin.Engine {
	if env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DebugPrintRouteFunc = func(method, path, handler string, _ int) {
		globalLogger.Trace().
			Str("method", method).
			Str("path", path).
			Str("handler", handler).
			Msg("registered route")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	v1.RegisterRoutes(router.Group("/api/v1"), v1.New(
		globalLogger,
		globalClock,
		globalServices.tasks,
		globalServices.notes,
		globalServices.removals,
		globalServices.clock,
	))
	return router
}

// serveHTTP blocks until ctx is done or the listener fails. In-flight
// requests get shutdownTimeout to finish.
func serveHTTP(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		globalLogger.Info().
			Str("addr", server.Addr).
			Msg("listening")
		listenErr <- server.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	globalLogger.Info().Msg("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	globalLogger.Info().Msg("shut down http server")
	return nil
}
