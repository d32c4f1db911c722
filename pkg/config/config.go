package config

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string `validate:"oneof=development production"`
	Port int    `validate:"gt=0,lte=65535"`

	Backend BackendConfig
	Session SessionConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// BackendConfig locates the notes REST backend the client talks to.
type BackendConfig struct {
	BaseURL   string `validate:"required,url"`
	APIPrefix string
	Timeout   time.Duration
	PerPage   int `validate:"gt=0"`
}

// SessionConfig governs the gateway's browser-session cookie and registry.
type SessionConfig struct {
	Secret     string `validate:"required"`
	CookieName string
	TTL        time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Backend = BackendConfig{
		BaseURL:   v.GetString("BACKEND_BASE_URL"),
		APIPrefix: v.GetString("API_PREFIX"),
		Timeout:   parseDuration(v.GetString("HTTP_TIMEOUT"), 15*time.Second),
		PerPage:   v.GetInt("PER_PAGE"),
	}

	cfg.Session = SessionConfig{
		Secret:     v.GetString("SESSION_SECRET"),
		CookieName: v.GetString("SESSION_COOKIE_NAME"),
		TTL:        parseDuration(v.GetString("SESSION_TTL"), 12*time.Hour),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)

	v.SetDefault("BACKEND_BASE_URL", "http://localhost:5000")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("HTTP_TIMEOUT", "15s")
	v.SetDefault("PER_PAGE", 12)

	v.SetDefault("SESSION_SECRET", "dev_session_secret")
	v.SetDefault("SESSION_COOKIE_NAME", "notes_session")
	v.SetDefault("SESSION_TTL", "12h")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
