// Package login реализует клиентский маршрут входа.
//
// GET отдает описание формы, POST декодирует учетные данные и запускает поток входа.
// При успехе возвращается 303 See Other на домашний маршрут, при ошибке JSON
// с уведомлением и, для ошибок валидации, сообщениями по полям.
package login

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

// Flow описывает поток входа.
type Flow interface {
	Submit(ctx context.Context, creds models.Credentials, ui session.UI) error
}

// Handler обрабатывает маршрут /user/login.
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

// Form отдает описание формы входа.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(views.LoginForm()))
}

// ServeHTTP отправляет учетные данные.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	ui := webui.New()
	err := h.flow.Submit(r.Context(), req, ui)
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
	switch {
	case errors.As(err, &errs):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(errs).WithNotification(notification).WithUI(state))
	case isHTTPError(err):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials").WithNotification(notification).WithUI(state))
	default:
		log.Error("login failed", sl.Err(err))
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, response.Error("points service unavailable").WithNotification(notification).WithUI(state))
	}
}

func isHTTPError(err error) bool {
	_, ok := gateway.IsHTTPError(err)
	return ok
}
