// Package config holds the runtime configuration and the workflow
// constants shared across services.
package config

import (
	"fmt"
	"os"
)

// Config is the environment-driven runtime configuration. Values are
// read once at startup; godotenv loading happens in cmd before Load.
type Config struct {
	ListenAddr string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	// TelegramBotToken and TelegramStaffChatID configure the staff
	// notification channel. Both empty disables it.
	TelegramBotToken    string
	TelegramStaffChatID string

	LogLevel  string
	LogFormat string
}

// Load builds a Config from the environment, applying development
// defaults for anything unset.
func Load() *Config {
	return &Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "user"),
		DBPassword: getenv("DB_PASSWORD", "password"),
		DBName:     getenv("DB_NAME", "hostelhubdb"),
		DBPort:     getenv("DB_PORT", "5432"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6380"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: getenv("JWT_SECRET", "dev-only-secret"),

		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramStaffChatID: os.Getenv("TELEGRAM_STAFF_CHAT_ID"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "json"),
	}
}

// DSN renders the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
