package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"infopage/config"
	"infopage/infras/otel"
	"infopage/shared/constant"
	"infopage/transport/http/middleware"
	"infopage/transport/http/response"
	"infopage/transport/http/router"
	"infopage/transport/http/static"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// HealthChecker reports whether the backing database answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Health     HealthChecker
	Otel       otel.Otel

	state atomic.Int32
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware, health HealthChecker, otl otel.Otel) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Health:     health,
		Otel:       otl,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Handler builds the routes: the slide and room endpoints, /health and the
// embedded display page.
func (h *HTTP) Handler() http.Handler {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.Recoverer)

	if h.Config.App.CORS.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.Config.App.CORS.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			MaxAge:         h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	mux.Use(h.Middleware.Tracing)
	mux.Use(h.Middleware.RateLimit())

	mux.Get("/health", h.health)

	h.Router.SetupRoutes(mux)

	mux.Handle("/*", http.FileServer(http.FS(static.Files)))

	return mux
}

// Serve listens until ctx is cancelled and then shuts down gracefully. Outside
// development /health reports the shutdown for the grace period first, so a
// load balancer stops sending traffic.
func (h *HTTP) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.state.Store(int32(ServerStateReady))

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting up HTTP server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if h.Config.Server.Env != constant.ServerEnvDevelopment {
		grace := time.Duration(h.Config.Server.Shutdown.GracePeriodSeconds) * time.Second

		log.Info().Dur("grace", grace).Msg("Entering grace period.")
		h.state.Store(int32(ServerStateInGracePeriod))
		time.Sleep(grace)
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err //nolint:wrapcheck
	}

	if err := h.Otel.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("failed to flush traces")
	}

	log.Info().Msg("HTTP server stopped.")

	return nil
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() == ServerStateInGracePeriod {
		response.WithPreparingShutdown(w)

		return
	}

	if err := h.Health.Ping(r.Context()); err != nil {
		log.Warn().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
