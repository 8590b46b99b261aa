package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds notification gateway configuration loaded from the environment.
type Config struct {
	AppName         string
	LogLevel        string
	HTTPPort        string
	WebDir          string
	AllowedOrigins  []string
	ProviderTimeout time.Duration

	// Server-side credential blob (service account JSON) for the admin SDK.
	ServiceAccountKey string

	// Public web app config, exposed to the page and the service worker.
	Web WebConfig

	// Public VAPID key handed to the browser for token requests.
	VAPIDKey string

	// Optional token suppression cache.
	RedisURL            string
	TokenSuppressionTTL time.Duration
}

// WebConfig is the public Firebase web app configuration. None of these
// fields are secrets; they are served verbatim to the browser and the
// service worker so the worker script carries no hardcoded literals.
type WebConfig struct {
	APIKey            string `json:"apiKey"`
	AuthDomain        string `json:"authDomain"`
	ProjectID         string `json:"projectId"`
	StorageBucket     string `json:"storageBucket"`
	MessagingSenderID string `json:"messagingSenderId"`
	AppID             string `json:"appId"`
	MeasurementID     string `json:"measurementId,omitempty"`
}

// Load loads configuration and performs basic validation.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppName:         getEnv("APP_NAME", "notification_gateway"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		WebDir:          getEnv("WEB_DIR", "./web"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:8080")),
		ProviderTimeout: getEnvAsDuration("PROVIDER_TIMEOUT", 10*time.Second),

		ServiceAccountKey: getEnv("FIREBASE_SERVICE_ACCOUNT_KEY", ""),

		Web: WebConfig{
			APIKey:            getEnv("FIREBASE_API_KEY", ""),
			AuthDomain:        getEnv("FIREBASE_AUTH_DOMAIN", ""),
			ProjectID:         getEnv("FIREBASE_PROJECT_ID", ""),
			StorageBucket:     getEnv("FIREBASE_STORAGE_BUCKET", ""),
			MessagingSenderID: getEnv("FIREBASE_MESSAGING_SENDER_ID", ""),
			AppID:             getEnv("FIREBASE_APP_ID", ""),
			MeasurementID:     getEnv("FIREBASE_MEASUREMENT_ID", ""),
		},

		VAPIDKey: getEnv("FIREBASE_VAPID_KEY", ""),

		RedisURL:            getEnv("REDIS_URL", ""),
		TokenSuppressionTTL: getEnvAsDuration("TOKEN_SUPPRESSION_TTL", 24*time.Hour),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.ServiceAccountKey == "" {
		missing = append(missing, "FIREBASE_SERVICE_ACCOUNT_KEY")
	}
	if c.Web.APIKey == "" {
		missing = append(missing, "FIREBASE_API_KEY")
	}
	if c.Web.ProjectID == "" {
		missing = append(missing, "FIREBASE_PROJECT_ID")
	}
	if c.Web.MessagingSenderID == "" {
		missing = append(missing, "FIREBASE_MESSAGING_SENDER_ID")
	}
	if c.Web.AppID == "" {
		missing = append(missing, "FIREBASE_APP_ID")
	}
	if c.VAPIDKey == "" {
		missing = append(missing, "FIREBASE_VAPID_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}

func getEnv(key, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

func getEnvAsDuration(key string, def time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("invalid duration for %s, using default %s: %v", key, def, err)
			return def
		}
		return d
	}
	return def
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
