package userapp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/loyalty-userapp/internal/config"
	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
	"github.com/magabrotheeeer/loyalty-userapp/internal/tokenstore"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	store  tokenstore.Store
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := tokenstore.New(ctx, cfg.TokenStorage, cfg.RedisConnection, logger)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		API:     gateway.New(cfg.BaseURL, cfg.TimeoutAPI, logger),
		Store:   store,
		Limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		Now:     time.Now,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}, nil
}

// Handler возвращает корневой обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeStore()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeStore()
		return err
	}
}

func (a *App) closeStore() {
	closer, ok := a.store.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		a.logger.Warn("failed to close token storage", sl.Err(err))
	}
}
