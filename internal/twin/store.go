// Package twin реализует двойник сервиса баллов в памяти процесса.
//
// Двойник повторяет внешний контракт сервера (вход, регистрация, профиль,
// транзакции и балансы с суммами в минорных единицах) и используется в
// сквозных тестах клиента и для локальной разработки.
package twin

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
)

var (
	// ErrUserExists пользователь с таким email уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
)

// User пользователь двойника.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	PasswordHash string
	UID          string // идентификатор реферальной ссылки, если был передан при регистрации
	Profile      models.UserProfile
}

// Store хранилище пользователей, транзакций и балансов.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*User
	emails       map[string]string
	transactions map[string][]models.RawTransaction
	balances     map[string]map[string]int64
}

// NewStore создает пустое хранилище.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]*User),
		emails:       make(map[string]string),
		transactions: make(map[string][]models.RawTransaction),
		balances:     make(map[string]map[string]int64),
	}
}

// CreateUser сохраняет нового пользователя. Email уникален.
func (s *Store) CreateUser(ctx context.Context, user User) error {
	const op = "twin.Store.CreateUser"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.emails[user.Profile.Email]; ok {
		return fmt.Errorf("%s: %w", op, ErrUserExists)
	}
	s.users[user.ID] = &user
	s.emails[user.Profile.Email] = user.ID
	return nil
}

// UserByEmail возвращает пользователя по email.
func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	const op = "twin.Store.UserByEmail"
	if err := ctx.Err(); err != nil {
		return User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[email]
	if !ok {
		return User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return *s.users[id], nil
}

// UserByID возвращает пользователя по идентификатору.
func (s *Store) UserByID(ctx context.Context, id string) (User, error) {
	const op = "twin.Store.UserByID"
	if err := ctx.Err(); err != nil {
		return User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return *user, nil
}

// AddTransaction добавляет транзакцию пользователю и начисляет баллы на баланс магазина.
// Транзакция без магазина баланс не меняет.
func (s *Store) AddTransaction(ctx context.Context, userID string, tx models.RawTransaction) error {
	const op = "twin.Store.AddTransaction"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	s.transactions[userID] = append(s.transactions[userID], tx)
	if tx.ShopName != nil {
		shops, ok := s.balances[userID]
		if !ok {
			shops = make(map[string]int64)
			s.balances[userID] = shops
		}
		shops[*tx.ShopName] += tx.PointsAllocated
	}
	return nil
}

// Transactions возвращает копию транзакций пользователя в порядке добавления.
func (s *Store) Transactions(ctx context.Context, userID string) ([]models.RawTransaction, error) {
	const op = "twin.Store.Transactions"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RawTransaction, len(s.transactions[userID]))
	copy(out, s.transactions[userID])
	return out, nil
}

// Balances возвращает балансы пользователя, отсортированные по названию магазина.
func (s *Store) Balances(ctx context.Context, userID string) ([]models.RawShopBalance, error) {
	const op = "twin.Store.Balances"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	shops := s.balances[userID]
	names := make([]string, 0, len(shops))
	for name := range shops {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.RawShopBalance, 0, len(names))
	for _, name := range names {
		out = append(out, models.RawShopBalance{ShopName: &name, Balance: shops[name]})
	}
	return out, nil
}
