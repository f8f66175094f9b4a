// Package home реализует домашний маршрут авторизованной зоны.
//
// Каждый запрос считается отдельным показом экрана: создается новый сборщик модели, который
// один раз выполняет три запроса к сервису баллов. Ошибка сборки не меняет HTTP-статус,
// она выражена в самой модели (profile равен null, error заполнен).
package home

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
)

// Loader собирает модель домашнего экрана.
type Loader interface {
	Load(ctx context.Context) models.HomeViewModel
}

// Handler обрабатывает маршрут /user.
type Handler struct {
	log       *slog.Logger
	newLoader func() Loader
}

// New создает обработчик. newLoader вызывается на каждый запрос.
func New(log *slog.Logger, newLoader func() Loader) *Handler {
	return &Handler{
		log:       log,
		newLoader: newLoader,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.home"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	vm := h.newLoader().Load(r.Context())
	if vm.Failed() {
		log.Warn("home view is in failed state", slog.String("reason", *vm.Error))
	} else {
		log.Info("home view loaded",
			slog.Int("transactions", len(vm.Transactions)),
			slog.Int("shops", len(vm.Shops)),
		)
	}

	render.JSON(w, r, vm)
}
