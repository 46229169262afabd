package utils

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Session   SessionConfig
	Email     EmailConfig
	TMDB      TMDBConfig
	Worker    WorkerConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
	Migrate  bool
}

type SessionConfig struct {
	ExpiryHours int
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type TMDBConfig struct {
	APIKey        string
	BaseURL       string
	RatePerSecond float64
}

type WorkerConfig struct {
	NotifyTopic  string
	NotifyBuffer int64
	TrendingCron string
}

type RateLimitConfig struct {
	RatingsPerMinute int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-catalog")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIGRATE", true)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_RATE_PER_SECOND", 4)
	viper.SetDefault("TRENDING_CRON", "@daily")
	viper.SetDefault("NOTIFY_TOPIC", "movie.updated.notifications")
	viper.SetDefault("NOTIFY_BUFFER", 256)
	viper.SetDefault("RATING_RATE_LIMIT", 30)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// .env is optional, the environment alone is enough in containers
	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
			Migrate:  viper.GetBool("DB_MIGRATE"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		TMDB: TMDBConfig{
			APIKey:        viper.GetString("TMDB_API_KEY"),
			BaseURL:       viper.GetString("TMDB_BASE_URL"),
			RatePerSecond: viper.GetFloat64("TMDB_RATE_PER_SECOND"),
		},
		Worker: WorkerConfig{
			NotifyTopic:  viper.GetString("NOTIFY_TOPIC"),
			NotifyBuffer: viper.GetInt64("NOTIFY_BUFFER"),
			TrendingCron: viper.GetString("TRENDING_CRON"),
		},
		RateLimit: RateLimitConfig{
			RatingsPerMinute: viper.GetInt("RATING_RATE_LIMIT"),
		},
		CORS: CORSConfig{
			AllowedOrigins: SplitCSV(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	return config, nil
}

// SplitCSV splits a comma separated value, dropping blanks.
func SplitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
