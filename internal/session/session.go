// Package session реализует потоки установления сессии: вход и регистрацию.
//
// Оба потока проверяют форму, отправляют учетные данные без заголовка token,
// сохраняют полученный токен в хранилище и переводят клиента на домашний маршрут.
// Индикатор отправки снимается при любом исходе.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
)

const (
	PathLogin    = "/user/login"
	PathRegister = "/user/"

	// RouteHome маршрут авторизованной зоны.
	RouteHome = "/user"
)

// NotificationDuration время показа уведомления.
const NotificationDuration = 3 * time.Second

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var errNoToken = errors.New("response does not contain a token")

// API отправляет запросы к сервису баллов.
type API interface {
	Do(ctx context.Context, path string, opts gateway.Options, out any) error
}

// Notification кратковременное уведомление для пользователя.
type Notification struct {
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      string        `json:"status"`
	Duration    time.Duration `json:"duration"`
}

// UI сторона представления, которой управляет поток.
type UI interface {
	// SetSubmitting включает и выключает индикатор отправки.
	SetSubmitting(submitting bool)
	// Notify показывает уведомление.
	Notify(n Notification)
	// Navigate переводит клиента на маршрут.
	Navigate(route string)
}
