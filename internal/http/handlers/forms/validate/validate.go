// Package validate реализует мгновенную проверку полей формы.
//
// Клиент присылает текущие значения и список тронутых полей, а в ответ получает
// ошибки, которые нужно показать. Признак submitted показывает ошибки всех полей.
package validate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/loyalty-userapp/internal/http/response"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
	"github.com/magabrotheeeer/loyalty-userapp/internal/validation"
)

// Request текущее состояние формы.
type Request struct {
	Values    map[string]string `json:"values"`
	Touched   []string          `json:"touched"`
	Submitted bool              `json:"submitted"`
}

// Result ошибки для показа и признак того, можно ли отправлять форму.
type Result struct {
	Errors validation.Errors `json:"errors"`
	Valid  bool              `json:"valid"`
}

type Handler struct {
	log   *slog.Logger
	forms map[string]validation.Form
}

// New создает обработчик. forms содержит формы по имени из параметра маршрута {form}.
func New(log *slog.Logger, forms map[string]validation.Form) *Handler {
	return &Handler{
		log:   log,
		forms: forms,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.forms.validate"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	name := chi.URLParam(r, "form")
	form, ok := h.forms[name]
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("unknown form"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	state := validation.NewState(form)
	state.Touch(req.Touched...)

	var visible validation.Errors
	if req.Submitted {
		visible, _ = state.Submit(req.Values)
	} else {
		visible = state.Visible(req.Values)
	}

	render.JSON(w, r, response.StatusOKWithData(Result{
		Errors: visible,
		Valid:  form.Valid(req.Values),
	}))
}
