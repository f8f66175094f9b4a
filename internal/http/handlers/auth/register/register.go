// Package register реализует клиентский маршрут регистрации.
// Идентификатор реферальной ссылки принимается из параметра uid строки запроса.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/response"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/views"
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/webui"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
	"github.com/magabrotheeeer/loyalty-userapp/internal/session"
	"github.com/magabrotheeeer/loyalty-userapp/internal/validation"
)

// UIDParam имя параметра строки запроса с идентификатором реферальной ссылки.
const UIDParam = "uid"

// Flow описывает поток регистрации.
type Flow interface {
	Submit(ctx context.Context, profile models.RegistrationProfile, uid string, ui session.UI) error
}

type Handler struct {
	log  *slog.Logger
	flow Flow
}

func New(log *slog.Logger, flow Flow) *Handler {
	return &Handler{
		log:  log,
		flow: flow,
	}
}

// Form отдает описание формы регистрации с вариантами выбора.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(views.RegisterForm(r.URL.Query().Get(UIDParam))))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegistrationProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	ui := webui.New()
	err := h.flow.Submit(r.Context(), req, r.URL.Query().Get(UIDParam), ui)
	notification := ui.LastNotification()
	state := ui.State()

	if err == nil {
		w.Header().Set("Location", state.Route)
		render.Status(r, http.StatusSeeOther)
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"redirect": state.Route,
		}).WithNotification(notification).WithUI(state))
		return
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(errs).WithNotification(notification).WithUI(state))
		return
	}

	if httpErr, ok := gateway.IsHTTPError(err); ok && httpErr.Status >= 400 && httpErr.Status < 500 {
		render.Status(r, httpErr.Status)
		render.JSON(w, r, response.Error("failed to register user").WithNotification(notification).WithUI(state))
		return
	}

	log.Error("registration failed", sl.Err(err))
	render.Status(r, http.StatusBadGateway)
	render.JSON(w, r, response.Error("points service unavailable").WithNotification(notification).WithUI(state))
}
