// Package tokenstore хранит токен текущей сессии в единственном постоянном слоте.
//
// Сохранение и чтение синхронные и не возвращают ошибок вызывающему:
// сбои хранилища только логируются. Срок жизни и формат токена не проверяются.
package tokenstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/loyalty-userapp/internal/config"
)

// DefaultKey имя ключа, под которым хранится токен.
const DefaultKey = "jwt"

// Поддерживаемые драйверы хранилища.
const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Store описывает слот с токеном сессии.
type Store interface {
	// Save перезаписывает токен.
	Save(token string)
	// Load возвращает токен и признак его наличия.
	Load() (string, bool)
}

// New создает хранилище по настройкам конфига.
func New(ctx context.Context, cfg config.TokenStorage, redisCfg config.RedisConnection, log *slog.Logger) (Store, error) {
	const op = "tokenstore.New"

	key := cfg.TokenKey
	if key == "" {
		key = DefaultKey
	}

	switch cfg.Driver {
	case DriverFile, "":
		return NewFile(cfg.Path, key, log), nil
	case DriverRedis:
		store, err := NewRedis(ctx, redisCfg, key, log)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return store, nil
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%s: unknown driver %q", op, cfg.Driver)
	}
}
