package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN          string `mapstructure:"DB_DSN"`
	HTTPPort       string `mapstructure:"HTTP_PORT"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	Environment    string `mapstructure:"ENV"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	JWTSigningKey string        `mapstructure:"JWT_SIGNING_KEY"`
	JWTIssuer     string        `mapstructure:"JWT_ISSUER"`
	TokenTTL      time.Duration `mapstructure:"TOKEN_TTL"`
	VerifyTTL     time.Duration `mapstructure:"VERIFY_TTL"`

	RateLimitPerMin int `mapstructure:"RATE_LIMIT_PER_MIN"`

	// Опционально: уведомления в телеграм-чат админа
	TelegramToken string `mapstructure:"TELEGRAM_TOKEN"`
	AdminChatID   int64  `mapstructure:"ADMIN_CHAT_ID"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	// Читаем напрямую из переменных окружения (после godotenv.Load они там)
	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		HTTPPort:       os.Getenv("HTTP_PORT"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		Environment:    os.Getenv("ENV"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		JWTSigningKey:  os.Getenv("JWT_SIGNING_KEY"),
		JWTIssuer:      os.Getenv("JWT_ISSUER"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "mytutor"
	}

	cfg.TokenTTL = durationEnv("TOKEN_TTL", 24*time.Hour)
	cfg.VerifyTTL = durationEnv("VERIFY_TTL", 48*time.Hour)
	cfg.RateLimitPerMin = intEnv("RATE_LIMIT_PER_MIN", 120)

	if v := os.Getenv("ADMIN_CHAT_ID"); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_ID must be a number: %w", err)
		}
		cfg.AdminChatID = chatID
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.JWTSigningKey == "" {
		return nil, fmt.Errorf("JWT_SIGNING_KEY is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// TelegramEnabled: уведомления в телеграм включаются только когда
// заданы и токен, и чат
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.AdminChatID != 0
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
