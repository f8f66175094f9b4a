package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/loyalty-userapp/internal/http/response"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// UserID — ключ идентификатора пользователя в контексте.
const UserID Key = "user_id"

// TokenHeader имя заголовка, в котором сервис баллов принимает токен сессии.
const TokenHeader = "token"

// Authenticator проверяет токен сессии и возвращает идентификатор пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// TokenMiddleware проверяет токен из заголовка token. Значение передается как есть,
// без схемы Bearer. При успехе кладет идентификатор пользователя в контекст,
// иначе отвечает 401 Unauthorized.
func TokenMiddleware(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.TokenMiddleware"

			log := log.With(
				sl.Op(op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			userID, err := auth.Authenticate(r.Context(), r.Header.Get(TokenHeader))
			if err != nil {
				log.Warn("invalid or missing token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or missing token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserID, userID)))
		})
	}
}

// UserIDFromContext возвращает идентификатор пользователя, положенный TokenMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserID).(string)
	return userID, ok && userID != ""
}
