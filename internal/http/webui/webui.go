// Package webui связывает потоки сессии с HTTP-ответом: собирает индикатор отправки,
// уведомления и маршрут перехода, чтобы обработчик сформировал ответ по их итогам.
package webui

import (
	"sync"

	"github.com/magabrotheeeer/loyalty-userapp/internal/session"
)

// Recorder реализует session.UI для одного запроса.
type Recorder struct {
	mu            sync.Mutex
	submitting    bool
	notifications []session.Notification
	route         string
	navigations   int
}

func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetSubmitting(submitting bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitting = submitting
}

func (r *Recorder) Notify(n session.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *Recorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.route = route
	r.navigations++
}

// State итог работы потока для ответа клиенту.
type State struct {
	Submitting bool   `json:"submitting"`
	Navigated  bool   `json:"navigated"`
	Route      string `json:"route,omitempty"`
}

// State возвращает состояние индикатора отправки и перехода.
func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return State{
		Submitting: r.submitting,
		Navigated:  r.navigations > 0,
		Route:      r.route,
	}
}

// LastNotification возвращает последнее уведомление или nil.
func (r *Recorder) LastNotification() *session.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return nil
	}
	n := r.notifications[len(r.notifications)-1]
	return &n
}
