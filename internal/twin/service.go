package twin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/jwt"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/password"
	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
)

var (
	// ErrInvalidCredentials неверный email или пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized токен отсутствует или не прошел проверку.
	ErrUnauthorized = errors.New("unauthorized")
)

// Seed данные транзакции, добавляемой через административный маршрут.
type Seed struct {
	Email           string     `json:"email" validate:"required,email"`
	ShopName        *string    `json:"shop_name"`
	TotalCost       int64      `json:"total_cost" validate:"min=0"`
	PointsAllocated int64      `json:"points_allocated" validate:"min=0"`
	PerformedAt     *time.Time `json:"performed_at"`
}

// Service логика двойника: регистрация, вход, проверка токена и выдача данных пользователя.
type Service struct {
	store    *Store
	jwtMaker jwt.Maker
	now      func() time.Time
}

// NewService создает Service.
func NewService(store *Store, jwtMaker jwt.Maker) *Service {
	return &Service{
		store:    store,
		jwtMaker: jwtMaker,
		now:      time.Now,
	}
}

// Register создает пользователя с хэшированным паролем и возвращает токен сессии.
func (s *Service) Register(ctx context.Context, profile models.RegistrationProfile) (string, error) {
	const op = "twin.Service.Register"
	hashed, err := password.GetHash(profile.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	user := User{
		ID:           uuid.NewString(),
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		PasswordHash: hashed,
		UID:          profile.UID,
		Profile: models.UserProfile{
			Email:       profile.Email,
			UserName:    profile.UserName,
			DateOfBirth: profile.DateOfBirth,
			Gender:      profile.Gender,
			Nationality: profile.Nationality,
		},
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Profile.Email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Login проверяет пароль и возвращает токен сессии.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (string, error) {
	const op = "twin.Service.Login"
	user, err := s.store.UserByEmail(ctx, creds.Email)
	if errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, creds.Password); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Profile.Email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Authenticate проверяет токен и возвращает идентификатор пользователя.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	const op = "twin.Service.Authenticate"
	if token == "" {
		return "", fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrUnauthorized, err)
	}
	if _, err := s.store.UserByID(ctx, claims.Subject); err != nil {
		return "", fmt.Errorf("%s: %w: %w", op, ErrUnauthorized, err)
	}
	return claims.Subject, nil
}

// Profile возвращает профиль пользователя.
func (s *Service) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	const op = "twin.Service.Profile"
	user, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%s: %w", op, err)
	}
	return user.Profile, nil
}

// Transactions возвращает транзакции пользователя.
func (s *Service) Transactions(ctx context.Context, userID string) ([]models.RawTransaction, error) {
	return s.store.Transactions(ctx, userID)
}

// Balances возвращает балансы пользователя по магазинам.
func (s *Service) Balances(ctx context.Context, userID string) ([]models.RawShopBalance, error) {
	return s.store.Balances(ctx, userID)
}

// AddTransaction добавляет транзакцию пользователю с указанным email.
// Без performed_at используется текущее время.
func (s *Service) AddTransaction(ctx context.Context, seed Seed) (models.RawTransaction, error) {
	const op = "twin.Service.AddTransaction"
	user, err := s.store.UserByEmail(ctx, seed.Email)
	if err != nil {
		return models.RawTransaction{}, fmt.Errorf("%s: %w", op, err)
	}

	performedAt := s.now().UTC().Truncate(time.Second)
	if seed.PerformedAt != nil {
		performedAt = seed.PerformedAt.UTC()
	}
	tx := models.RawTransaction{
		TID:             uuid.NewString(),
		ShopName:        seed.ShopName,
		PerformedAt:     models.Timestamp{Time: performedAt},
		TotalCost:       seed.TotalCost,
		PointsAllocated: seed.PointsAllocated,
	}
	if err := s.store.AddTransaction(ctx, user.ID, tx); err != nil {
		return models.RawTransaction{}, fmt.Errorf("%s: %w", op, err)
	}
	return tx, nil
}

// User возвращает пользователя по email. Используется административными маршрутами и тестами.
func (s *Service) User(ctx context.Context, email string) (User, error) {
	return s.store.UserByEmail(ctx, email)
}
