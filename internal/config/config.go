package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/iudanet/wordcards/internal/validation"
)

// EnvPrefix префикс переменных окружения: WORDCARDS_DB_DSN -> db.dsn
const EnvPrefix = "WORDCARDS"

// ServerConfig конфигурация wordcards-server
type ServerConfig struct {
	Env       string          `mapstructure:"env" validate:"oneof=dev development production"`
	LogLevel  string          `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Server    HTTPConfig      `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"db"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type HTTPConfig struct {
	Address         string        `mapstructure:"address" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

type DBConfig struct {
	Driver      string `mapstructure:"driver" validate:"oneof=sqlite postgres"`
	DSN         string `mapstructure:"dsn" validate:"required"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret" validate:"min=32"`
	Issuer string `mapstructure:"issuer"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" validate:"gt=0"`
	Burst int     `mapstructure:"burst" validate:"min=1"`
}

// ClientConfig конфигурация CLI клиента
type ClientConfig struct {
	Env       string `mapstructure:"env" validate:"oneof=dev development production"`
	LogLevel  string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	ServerURL string `mapstructure:"server_url" validate:"required,url"`
	DBPath    string `mapstructure:"db_path" validate:"required"`
	PrefsPath string `mapstructure:"prefs_path"`
}

// SetServerDefaults registers defaults for every server key.
// Ключи без значения по умолчанию не видны viper.Unmarshal из окружения.
func SetServerDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "wordcards.db")
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "wordcards")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("rate_limit.rps", 10.0)
	v.SetDefault("rate_limit.burst", 20)
}

// SetClientDefaults registers defaults for every client key.
func SetClientDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("log_level", "warn")
	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("db_path", "wordcards-client.db")
	v.SetDefault("prefs_path", "")
}

// LoadServer читает конфигурацию сервера: файл (если задан), окружение, флаги.
func LoadServer(v *viper.Viper, configFile string) (*ServerConfig, error) {
	SetServerDefaults(v)
	if err := read(v, configFile); err != nil {
		return nil, err
	}

	cfg := &ServerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}

// LoadClient читает конфигурацию клиента.
func LoadClient(v *viper.Viper, configFile string) (*ClientConfig, error) {
	SetClientDefaults(v)
	if err := read(v, configFile); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile подгружает .env в окружение процесса. Отсутствие файла не ошибка.
// Уже заданные переменные окружения не перезаписываются.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func read(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile == "" {
		return nil
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", configFile, err)
	}

	return nil
}
