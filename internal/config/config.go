package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix         = "SOCIAL_SPECTRUM"
	insecureJWTSecret = "social_spectrum_secret"
	defaultConfigDir  = "config"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Cookie   CookieConfig   `mapstructure:"cookie"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port           string `mapstructure:"port"`
	Mode           string `mapstructure:"mode"` // debug, release, test
	FrontendOrigin string `mapstructure:"frontend_origin"`
}

type DatabaseConfig struct {
	Type         string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename     string `mapstructure:"filename"` // for sqlite
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSL          bool   `mapstructure:"ssl"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

type CookieConfig struct {
	ExpiresDays int `mapstructure:"expires_days"`
}

type AdminConfig struct {
	Email string `mapstructure:"email"`
}

type StorageConfig struct {
	Driver         string `mapstructure:"driver"` // minio, local
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	UseSSL         bool   `mapstructure:"use_ssl"`
	BucketURL      string `mapstructure:"bucket_url"`
	LocalPath      string `mapstructure:"local_path"`
	LocalURLPrefix string `mapstructure:"local_url_prefix"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type LimitsConfig struct {
	JSONBodyKB      int `mapstructure:"json_body_kb"`
	UploadMB        int `mapstructure:"upload_mb"`
	RequestsPerHour int `mapstructure:"requests_per_hour"`
	// width*height cap for decoded uploads
	MaxImagePixels int64 `mapstructure:"max_image_pixels"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// IsProduction reports whether errors should be translated in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "release"
}

// Load reads config/config.yaml (optional) and SOCIAL_SPECTRUM_* environment
// variables. The returned value is never mutated afterwards.
func Load(configDir string) (*Config, error) {
	v := newViper(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		slog.Warn("config file not found, using environment and defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := enforceJWTSecretSafety(&cfg); err != nil {
		return nil, err
	}
	cfg.Admin.Email = strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	return &cfg, nil
}

func newViper(configDir string) *viper.Viper {
	v := viper.New()

	configDir = strings.TrimSpace(configDir)
	if configDir == "" {
		configDir = defaultConfigDir
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "3000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.frontend_origin", "http://localhost:5173")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/social_spectrum.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "social_spectrum")
	v.SetDefault("database.ssl", false)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24*90)
	v.SetDefault("cookie.expires_days", 90)
	v.SetDefault("admin.email", "")
	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.bucket_url", "")
	v.SetDefault("storage.local_path", "uploads")
	v.SetDefault("storage.local_url_prefix", "/uploads")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "social_spectrum")
	v.SetDefault("limits.json_body_kb", 20)
	v.SetDefault("limits.upload_mb", 10)
	v.SetDefault("limits.requests_per_hour", 1000)
	v.SetDefault("limits.max_image_pixels", 40_000_000)
	v.SetDefault("log.level", "info")

	// server.port -> SOCIAL_SPECTRUM_SERVER_PORT
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

func enforceJWTSecretSafety(cfg *Config) error {
	if cfg.IsProduction() {
		if cfg.JWT.Secret == "" || cfg.JWT.Secret == insecureJWTSecret {
			return errors.New("release mode requires a non-default jwt.secret (set SOCIAL_SPECTRUM_JWT_SECRET)")
		}
		return nil
	}
	if cfg.JWT.Secret == "" {
		slog.Warn("jwt.secret is not set, falling back to an insecure development secret")
		cfg.JWT.Secret = insecureJWTSecret
	}
	return nil
}
