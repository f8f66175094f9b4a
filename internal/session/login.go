package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
	"github.com/magabrotheeeer/loyalty-userapp/internal/tokenstore"
	"github.com/magabrotheeeer/loyalty-userapp/internal/validation"
)

// Login поток входа по email и паролю.
type Login struct {
	log   *slog.Logger
	api   API
	store tokenstore.Store
	form  validation.Form
}

func NewLogin(log *slog.Logger, api API, store tokenstore.Store) *Login {
	return &Login{
		log:   log,
		api:   api,
		store: store,
		form:  LoginForm(),
	}
}

// Form возвращает правила формы входа.
func (l *Login) Form() validation.Form {
	return l.form
}

// Submit отправляет учетные данные. При успехе токен сохраняется и клиент переходит
// на RouteHome, при любой ошибке показывается уведомление и клиент остается на форме.
func (l *Login) Submit(ctx context.Context, creds models.Credentials, ui UI) (err error) {
	const op = "session.Login.Submit"
	log := l.log.With(sl.Op(op))

	ui.SetSubmitting(true)
	defer ui.SetSubmitting(false)
	defer func() {
		if err != nil {
			ui.Notify(Notification{
				Title:       "Login failed",
				Description: loginFailureMessage(err),
				Status:      StatusError,
				Duration:    NotificationDuration,
			})
		}
	}()

	if errs := l.form.Validate(CredentialsValues(creds)); len(errs) > 0 {
		log.Info("validation failed", sl.Err(errs))
		return errs
	}

	var resp models.TokenResponse
	err = l.api.Do(ctx, PathLogin, gateway.Options{Method: http.MethodPost, Body: creds}, &resp)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.Token == "" {
		log.Error("login failed", sl.Err(errNoToken))
		return fmt.Errorf("%s: %w", op, &gateway.ParseError{Err: errNoToken})
	}

	l.store.Save(resp.Token)
	log.Info("login success")

	ui.Notify(Notification{
		Title:    "Login successful",
		Status:   StatusSuccess,
		Duration: NotificationDuration,
	})
	ui.Navigate(RouteHome)
	return nil
}

func loginFailureMessage(err error) string {
	if _, ok := gateway.IsHTTPError(err); ok {
		return "Invalid credentials"
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		return errs.Error()
	}
	return unwrapMessage(err)
}
