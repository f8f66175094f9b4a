package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
	"github.com/magabrotheeeer/loyalty-userapp/internal/tokenstore"
	"github.com/magabrotheeeer/loyalty-userapp/internal/validation"
)

// Register поток регистрации.
type Register struct {
	log   *slog.Logger
	api   API
	store tokenstore.Store
	form  validation.Form
}

// NewRegister создает поток регистрации. now используется для проверки даты рождения,
// при nil берется time.Now.
func NewRegister(log *slog.Logger, api API, store tokenstore.Store, now func() time.Time) *Register {
	return &Register{
		log:   log,
		api:   api,
		store: store,
		form:  RegisterForm(now),
	}
}

// Form возвращает правила формы регистрации.
func (r *Register) Form() validation.Form {
	return r.form
}

// Submit регистрирует пользователя. uid — идентификатор из реферальной ссылки,
// при непустом значении он передается в запросе без изменений.
// Ошибки сервера логируются вместе с телом ответа, клиент остается на форме.
func (r *Register) Submit(ctx context.Context, profile models.RegistrationProfile, uid string, ui UI) (err error) {
	const op = "session.Register.Submit"
	log := r.log.With(sl.Op(op))

	ui.SetSubmitting(true)
	defer ui.SetSubmitting(false)
	defer func() {
		if err != nil {
			ui.Notify(Notification{
				Title:       "Registration failed",
				Description: registerFailureMessage(err),
				Status:      StatusError,
				Duration:    NotificationDuration,
			})
		}
	}()

	if errs := r.form.Validate(RegistrationValues(profile)); len(errs) > 0 {
		log.Info("validation failed", sl.Err(errs))
		return errs
	}

	payload := profile
	payload.UID = uid

	var resp models.TokenResponse
	err = r.api.Do(ctx, PathRegister, gateway.Options{Method: http.MethodPost, Body: payload}, &resp)
	if err != nil {
		if httpErr, ok := gateway.IsHTTPError(err); ok {
			log.Error("server responded with error",
				slog.Int("status", httpErr.Status),
				slog.String("body", string(httpErr.Body)),
			)
		} else {
			log.Error("error submitting form", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.Token == "" {
		log.Error("error submitting form", sl.Err(errNoToken))
		return fmt.Errorf("%s: %w", op, &gateway.ParseError{Err: errNoToken})
	}

	r.store.Save(resp.Token)
	log.Info("registration success", slog.Bool("referral", uid != ""))

	ui.Navigate(RouteHome)
	return nil
}

func registerFailureMessage(err error) string {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return errs.Error()
	}
	if httpErr, ok := gateway.IsHTTPError(err); ok {
		return httpErr.Error()
	}
	return unwrapMessage(err)
}
