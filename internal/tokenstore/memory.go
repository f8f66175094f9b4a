package tokenstore

import "sync"

// Memory хранит токен в памяти процесса. Используется в тестах.
type Memory struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
}

func (m *Memory) Load() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.set
}
