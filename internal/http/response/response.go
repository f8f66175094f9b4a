// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов клиентских маршрутов: успешных ответов, ошибок,
// ошибок валидации форм и уведомлений потоков.
package response

import (
	"github.com/magabrotheeeer/loyalty-userapp/internal/http/webui"
	"github.com/magabrotheeeer/loyalty-userapp/internal/session"
	"github.com/magabrotheeeer/loyalty-userapp/internal/validation"
)

// Response описывает стандартную структуру JSON‑ответа.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст ошибки (опционально, при неуспехе).
// Поле Data — данные ответа (опционально).
// Поле Notification — уведомление для пользователя (опционально).
// Поле UI — индикатор отправки и переход после потока входа или регистрации (опционально).
type Response struct {
	Status       string                `json:"status"`
	Error        string                `json:"error,omitempty"`
	Data         any                   `json:"data,omitempty"`
	Notification *session.Notification `json:"notification,omitempty"`
	UI           *webui.State          `json:"ui,omitempty"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует Response с ошибками полей формы в Data.fields.
func ValidationError(errs validation.Errors) Response {
	return Response{
		Status: StatusError,
		Error:  errs.Error(),
		Data:   map[string]any{"fields": errs},
	}
}

// WithNotification добавляет к ответу уведомление потока, если оно есть.
func (r Response) WithNotification(n *session.Notification) Response {
	r.Notification = n
	return r
}

// WithUI добавляет к ответу состояние индикатора отправки и перехода.
func (r Response) WithUI(state webui.State) Response {
	r.UI = &state
	return r
}
