// Package pointstwin запускает двойник сервиса баллов как отдельный HTTP сервер.
package pointstwin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/magabrotheeeer/loyalty-userapp/internal/config"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/jwt"
	"github.com/magabrotheeeer/loyalty-userapp/internal/twin"
)

type App struct {
	server *http.Server
	logger *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) *App {
	tw := twin.New(logger, jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL))

	return &App{
		server: &http.Server{
			Addr:              cfg.AddressTwin,
			Handler:           tw.Handler,
			ReadHeaderTimeout: cfg.TimeoutHTTP,
			IdleTimeout:       cfg.IdleTimeout,
		},
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("points twin listening on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.logger.Info("shutting down points twin")
		return a.server.Shutdown(timeoutCtx)
	}
}
