package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	OAuth      OAuthConfig
	Cloudinary CloudinaryConfig
	CometChat  CometChatConfig
	Firebase   FirebaseConfig
}

type ServerConfig struct {
	Port            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RateLimitPerMin int
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// CometChatConfig holds the three fixed application credentials for the chat
// provider. These identify the app, not a user; per-user identity is the
// profile id used as the chat UID.
type CometChatConfig struct {
	AppID   string
	Region  string
	AuthKey string
}

type FirebaseConfig struct {
	ServiceAccountPath string
}

func Load() *Config {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()
	return &Config{
		Server: ServerConfig{
			Port:            envOr("PORT", "8080"),
			Env:             envOr("APP_ENV", "development"),
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			RateLimitPerMin: envOrInt("RATE_LIMIT_PER_MIN", 100),
		},
		Database: DatabaseConfig{
			DSN:             envOr("DATABASE_DSN", "equiedge:equiedge@tcp(localhost:3306)/equiedge?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret:  envOr("JWT_ACCESS_SECRET", "change-me-in-production"),
			RefreshSecret: envOr("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "equiedge",
		},
		OAuth: OAuthConfig{
			GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			GoogleRedirectURL:  envOr("GOOGLE_REDIRECT_URL", "https://equiedge.co/api/v1/auth/google/callback"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: envOr("CLOUDINARY_CLOUD_NAME", "equiedge"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		CometChat: CometChatConfig{
			AppID:   envOr("COMETCHAT_APP_ID", "278833fb48d8c83b"),
			Region:  envOr("COMETCHAT_REGION", "us"),
			AuthKey: os.Getenv("COMETCHAT_AUTH_KEY"),
		},
		Firebase: FirebaseConfig{
			ServiceAccountPath: os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
