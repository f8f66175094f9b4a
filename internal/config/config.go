// Package config предоставялет структуры и функции для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	PointsAPI       `yaml:"points_api"`
	TokenStorage    `yaml:"token_storage"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	RateLimit       `yaml:"rate_limit"`
	Twin            `yaml:"twin"`
}

// PointsAPI структура для настройки клиента сервиса баллов.
// TimeoutAPI равный нулю означает отсутствие таймаута.
type PointsAPI struct {
	BaseURL    string        `yaml:"base_url" env:"POINTS_API_BASE_URL" env-default:"http://localhost:8002"`
	TimeoutAPI time.Duration `yaml:"timeout" env:"POINTS_API_TIMEOUT"`
}

// TokenStorage структура для настройки хранилища токена сессии
type TokenStorage struct {
	Driver   string `yaml:"driver" env:"TOKEN_STORAGE_DRIVER" env-default:"file"`
	Path     string `yaml:"path" env:"TOKEN_STORAGE_PATH" env-default:".userapp/storage.json"`
	TokenKey string `yaml:"key" env-default:"jwt"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RateLimit структура для ограничения частоты отправки учетных данных
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"1"`
	Burst int     `yaml:"burst" env-default:"3"`
}

// Twin структура для настройки двойника сервиса баллов
type Twin struct {
	AddressTwin  string        `yaml:"address" env:"TWIN_ADDRESS" env-default:":8002"`
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"TWIN_JWT_SECRET" env-default:"twin-secret"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// MustLoad функция для загрузки конфига по пути из CONFIG_PATH, завершает процесс при ошибке
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает конфиг из файла, переменные окружения переопределяют значения из файла
func Load(configPath string) (*Config, error) {
	const op = "config.Load"
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"PointsAPI:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"TokenStorage:\n"+
			"  Driver: %s\n"+
			"  Path: %s\n"+
			"  Key: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n",
		c.Env,
		c.BaseURL,
		c.TimeoutAPI,
		c.Driver,
		c.Path,
		c.TokenKey,
		c.AddressRedis,
		c.User,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.RPS,
		c.Burst,
	)
}
