package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Telegram TelegramConfig
	Shop     ShopConfig
	Log      LogConfig
	DemoMode bool
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type HTTPConfig struct {
	Port int
}

type TelegramConfig struct {
	Token string // status-lookup bot; bot is disabled when empty
}

type ShopConfig struct {
	SiteURL      string
	ContactPhone string
}

type LogConfig struct {
	File     string
	MaxBytes int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	httpPort, _ := strconv.Atoi(getEnv("HTTP_PORT", "3000"))
	logMax, _ := strconv.ParseInt(getEnv("LOG_MAX_BYTES", "262144"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "tailor"),
		},
		HTTP: HTTPConfig{
			Port: httpPort,
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Shop: ShopConfig{
			SiteURL:      getEnv("SITE_URL", "https://skumarantailor.vercel.app"),
			ContactPhone: getEnv("CONTACT_PHONE", "+91 94428 98544"),
		},
		Log: LogConfig{
			File:     getEnv("LOG_FILE", "logs/app.log"),
			MaxBytes: logMax,
		},
		DemoMode: isTruthy(os.Getenv("DEMO_MODE")),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	return v == "1" || v == "true" || v == "TRUE"
}
