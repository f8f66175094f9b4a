package twin

import (
	"net/http"
	"sync"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/loyalty-userapp/internal/http/response"
)

// Faults принудительные ответы двойника: путь → HTTP статус.
type Faults struct {
	mu       sync.RWMutex
	statuses map[string]int
}

// NewFaults создает пустой набор отказов.
func NewFaults() *Faults {
	return &Faults{statuses: make(map[string]int)}
}

// Set заставляет путь отвечать статусом status. Нулевой статус снимает отказ.
func (f *Faults) Set(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if status == 0 {
		delete(f.statuses, path)
		return
	}
	f.statuses[path] = status
}

// Reset снимает все отказы.
func (f *Faults) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.statuses)
}

func (f *Faults) status(path string) (int, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	status, ok := f.statuses[path]
	return status, ok
}

// Middleware отвечает заданным статусом вместо обработчика, если для пути установлен отказ.
func (f *Faults) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status, ok := f.status(r.URL.Path); ok {
			render.Status(r, status)
			render.JSON(w, r, response.Error("injected fault"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
