package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/loyalty-userapp/internal/config"
	"github.com/magabrotheeeer/loyalty-userapp/internal/lib/sl"
)

// Redis хранит токен под одним ключом в redis без срока жизни.
type Redis struct {
	Db  *redis.Client
	key string
	log *slog.Logger
}

// NewRedis подключается к redis и проверяет соединение.
func NewRedis(ctx context.Context, cfg config.RedisConnection, key string, log *slog.Logger) (*Redis, error) {
	const op = "tokenstore.NewRedis"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Redis{
		Db:  db,
		key: key,
		log: log.With(sl.Op("tokenstore.Redis"), slog.String("key", key)),
	}, nil
}

func (r *Redis) Save(token string) {
	if err := r.Db.Set(context.Background(), r.key, token, 0).Err(); err != nil {
		r.log.Error("failed to save token", sl.Err(err))
	}
}

func (r *Redis) Load() (string, bool) {
	val, err := r.Db.Get(context.Background(), r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		r.log.Error("failed to load token", sl.Err(err))
		return "", false
	}
	return val, true
}

func (r *Redis) Close() error {
	return r.Db.Close()
}
