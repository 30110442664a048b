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
	Environment     string        // development или production
	MeetingBaseURL  string        // основа ссылок на виртуальные встречи
	RedirectDelay   time.Duration // пауза на экране успеха перед переходом в календарь
	SeedDemoData    bool          // сидировать ли демонстрационные бронирования
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		Environment:    os.Getenv("ENV"),
		MeetingBaseURL: os.Getenv("MEETING_BASE_URL"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.MeetingBaseURL == "" {
		cfg.MeetingBaseURL = "https://zoom.us"
	}

	// Задержка редиректа после успешной записи, в миллисекундах
	cfg.RedirectDelay = 3500 * time.Millisecond
	if raw := os.Getenv("REDIRECT_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse REDIRECT_DELAY_MS: %w", err)
		}
		cfg.RedirectDelay = time.Duration(ms) * time.Millisecond
	}

	cfg.SeedDemoData = os.Getenv("SEED_DEMO_DATA") != "false"

	log.Printf("Config loaded\n")

	return cfg, nil
}
