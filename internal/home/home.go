// Package home собирает модель домашнего экрана из трех ответов сервиса баллов.
//
// Запросы профиля, транзакций и балансов выполняются последовательно под одним токеном.
// Первая же ошибка прерывает оставшиеся запросы, и модель помечается как неуспешная:
// частичной модели не бывает. После успеха суммы переводятся из минорных единиц.
package home

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/magabrotheeeer/loyalty-userapp/internal/gateway"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
	"github.com/magabrotheeeer/loyalty-userapp/internal/tokenstore"
)

const (
	PathProfile      = "/user/"
	PathTransactions = "/user/transactions"
	PathBalance      = "/user/balance"
)

const (
	MsgProfileFailed      = "Failed to fetch user profile"
	MsgTransactionsFailed = "Failed to fetch transactions"
	MsgBalancesFailed     = "Failed to fetch shop balances"
)

// API отправляет запросы к сервису баллов.
type API interface {
	Do(ctx context.Context, path string, opts gateway.Options, out any) error
}

// State состояние сборки модели.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Builder собирает модель домашнего экрана. Один Builder соответствует одному показу экрана:
// сборка выполняется один раз, повторные вызовы Load возвращают готовый результат.
type Builder struct {
	log   *slog.Logger
	api   API
	store tokenstore.Store

	once  sync.Once
	mu    sync.RWMutex
	state State
	model models.HomeViewModel
}

func NewBuilder(log *slog.Logger, api API, store tokenstore.Store) *Builder {
	return &Builder{
		log:   log,
		api:   api,
		store: store,
		model: models.HomeViewModel{Loading: true},
	}
}

// State возвращает текущее состояние сборки.
func (b *Builder) State() State {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Snapshot возвращает текущую модель. Пока сборка не завершена, Loading равен true.
func (b *Builder) Snapshot() models.HomeViewModel {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.model
}

// Load выполняет сборку при первом вызове и возвращает итоговую модель.
func (b *Builder) Load(ctx context.Context) models.HomeViewModel {
	b.once.Do(func() {
		b.setState(StateLoading, models.HomeViewModel{Loading: true})

		model, err := b.run(ctx)
		if err != nil {
			b.setState(StateFailed, model)
			return
		}
		b.setState(StateReady, model)
	})
	return b.Snapshot()
}

func (b *Builder) setState(state State, model models.HomeViewModel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state = state
	b.model = model
}

func (b *Builder) run(ctx context.Context) (models.HomeViewModel, error) {
	const op = "home.Builder.run"
	log := b.log.With(sl.Op(op))

	// Отсутствие токена здесь не ошибка: сервер сам отклонит запросы.
	token, _ := b.store.Load()

	raw, err := Collect(ctx, b.api, token)
	if err != nil {
		log.Error("failed to fetch home data", sl.Err(err))
		return FailedModel(err), err
	}
	return Normalize(raw), nil
}
