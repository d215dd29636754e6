package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/guardline/price-sentry/pkg/handlers/audit"
	pricesentrymiddleware "github.com/guardline/price-sentry/pkg/server/middleware"
	"github.com/guardline/price-sentry/pkg/services/audit"
	"github.com/guardline/price-sentry/pkg/services/catalog"
)

type Dependencies struct {
	Catalog catalog.Explorer
	Logger  zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Tolerance       audit.Tolerance
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	auditHandler := handlers.NewHandler(config.Dependencies.Catalog, config.Tolerance)

	router := chi.NewRouter()

	logger := config.Dependencies.Logger
	router.Use(pricesentrymiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/packages", auditHandler.ListPackages)
		r.Get("/audit/report", auditHandler.GetAuditReport)
		r.Get("/audit/packages/{package}", auditHandler.GetPackageAudit)
	})

	return router
}

type WebAPI struct {
	logger  *zerolog.Logger
	server  *http.Server
	timeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	logger := config.Dependencies.Logger
	return &WebAPI{
		logger:  &logger,
		timeout: timeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
