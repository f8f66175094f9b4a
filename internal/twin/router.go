package twin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/loyalty-userapp/internal/http/middlewarectx"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/jwt"
)

// NewRouter собирает маршруты двойника. Отказы применяются до аутентификации,
// административные маршруты отказам не подвержены.
func NewRouter(log *slog.Logger, service *Service, faults *Faults) http.Handler {
	h := NewHandler(log, service, faults)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	r.Group(func(r chi.Router) {
		r.Use(faults.Middleware)

		r.Post("/user/login", h.Login)
		r.Post("/user/", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.TokenMiddleware(service, log))
			r.Get("/user/", h.Profile)
			r.Get("/user/transactions", h.Transactions)
			r.Get("/user/balance", h.Balance)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/transactions", h.SeedTransaction)
		r.Post("/fail", h.Fail)
		r.Delete("/fail", h.ResetFaults)
	})

	return r
}

// Twin двойник сервиса баллов в сборе.
type Twin struct {
	Service *Service
	Faults  *Faults
	Handler http.Handler
}

// New создает двойник с пустым хранилищем.
func New(log *slog.Logger, jwtMaker jwt.Maker) *Twin {
	service := NewService(NewStore(), jwtMaker)
	faults := NewFaults()
	return &Twin{
		Service: service,
		Faults:  faults,
		Handler: NewRouter(log, service, faults),
	}
}
