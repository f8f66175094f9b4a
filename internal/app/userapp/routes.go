// Package userapp собирает клиентское приложение сервиса баллов: маршруты, потоки и хранилище токена.
package userapp

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/loyalty-userapp/internal/home"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/handlers/forms/validate"
	homehandler "github.com/magabrotheeeer/loyalty-userapp/internal/http/handlers/home"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/handlers/pages"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/middlewarectx"
	"github.com/magabrotheeeer/loyalty-userapp/internal/session"
	"github.com/magabrotheeeer/loyalty-userapp/internal/tokenstore"
	"github.com/magabrotheeeer/loyalty-userapp/internal/validation"
)

// Deps зависимости маршрутов.
type Deps struct {
	API     session.API
	Store   tokenstore.Store
	Limiter *rate.Limiter
	Now     func() time.Time
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	loginHandler := login.New(logger, session.NewLogin(logger, deps.API, deps.Store))
	registerHandler := register.New(logger, session.NewRegister(logger, deps.API, deps.Store, deps.Now))
	homeHandler := homehandler.New(logger, func() homehandler.Loader {
		return home.NewBuilder(logger, deps.API, deps.Store)
	})

	r.Get("/", pages.Landing)
	r.Get(session.PathLogin, loginHandler.Form)
	r.Get("/register", registerHandler.Form)
	r.Get(session.RouteHome, homeHandler.ServeHTTP)

	// Отправка учетных данных с ограничением частоты
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))
		r.Post(session.PathLogin, loginHandler.ServeHTTP)
		r.Post("/register", registerHandler.ServeHTTP)
	})

	r.Post("/forms/{form}/validate", validate.New(logger, map[string]validation.Form{
		"login":    session.LoginForm(),
		"register": session.RegisterForm(deps.Now),
	}).ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(pages.NotFound)
}
