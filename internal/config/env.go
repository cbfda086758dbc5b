package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Env is the runtime configuration of the service.
type Env struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Redis    RedisConfig    `koanf:"redis"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type ServerConfig struct {
	AppAddr           string   `koanf:"addr"`
	GinMode           string   `koanf:"gin_mode"`
	CORSOrigins       []string `koanf:"cors_origins"`
	AuthRatePerMinute int      `koanf:"auth_rate_per_minute"`
}

type DatabaseConfig struct {
	DSN      string `koanf:"dsn"`
	Host     string `koanf:"host"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	MaxOpen  int    `koanf:"max_open"`
}

type AuthConfig struct {
	JWTSecret       string        `koanf:"jwt_secret"`
	Issuer          string        `koanf:"issuer"`
	AccessTokenTTL  time.Duration `koanf:"access_token_ttl"`
	RefreshTokenTTL time.Duration `koanf:"refresh_token_ttl"`
	CookieSecure    bool          `koanf:"cookie_secure"`
	CookieDomain    string        `koanf:"cookie_domain"`
}

// RedisConfig is optional; an empty Addr keeps token revocation in memory.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

var defaultConfigPaths = []string{"config.yaml", "config.yml"}

func defaultEnv() Env {
	return Env{
		Server: ServerConfig{
			AppAddr: ":8080",
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"http://localhost:5173",
				"http://127.0.0.1:5173",
			},
			AuthRatePerMinute: 30,
		},
		Database: DatabaseConfig{
			Host:    "127.0.0.1:3306",
			User:    "root",
			Name:    "travel_app",
			MaxOpen: 25,
		},
		Auth: AuthConfig{
			Issuer:          "travelbook",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

var envMappings = map[string]string{
	"app_addr":             "server.addr",
	"gin_mode":             "server.gin_mode",
	"cors_allowed_origins": "server.cors_origins",
	"auth_rate_per_minute": "server.auth_rate_per_minute",
	"db_dsn":               "database.dsn",
	"db_host":              "database.host",
	"db_user":              "database.user",
	"db_password":          "database.password",
	"db_name":              "database.name",
	"db_max_open":          "database.max_open",
	"jwt_secret":           "auth.jwt_secret",
	"jwt_issuer":           "auth.issuer",
	"access_token_ttl":     "auth.access_token_ttl",
	"refresh_token_ttl":    "auth.refresh_token_ttl",
	"cookie_secure":        "auth.cookie_secure",
	"cookie_domain":        "auth.cookie_domain",
	"redis_addr":           "redis.addr",
	"redis_password":       "redis.password",
	"redis_db":             "redis.db",
	"log_level":            "logging.level",
	"log_format":           "logging.format",
}

// envTransform maps flat environment variable names onto config paths.
// Unknown variables are dropped.
func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}

// LoadEnv reads defaults, then an optional YAML file, then the environment.
// A local .env file is loaded into the process environment first when present.
func LoadEnv() (Env, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultEnv(), "koanf"), nil); err != nil {
		return Env{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Env{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return Env{}, fmt.Errorf("load environment: %w", err)
	}

	// comma separated list from CORS_ALLOWED_ORIGINS
	if raw, ok := k.Get("server.cors_origins").(string); ok {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if err := k.Set("server.cors_origins", origins); err != nil {
			return Env{}, fmt.Errorf("cors origins: %w", err)
		}
	}

	var out Env
	if err := k.Unmarshal("", &out); err != nil {
		return Env{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := out.Validate(); err != nil {
		return Env{}, err
	}
	return out, nil
}

// Validate rejects configurations the service cannot run with.
func (e Env) Validate() error {
	if len(e.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if e.Auth.AccessTokenTTL <= 0 || e.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	if e.Auth.RefreshTokenTTL <= e.Auth.AccessTokenTTL {
		return fmt.Errorf("refresh token ttl must exceed access token ttl")
	}
	if e.Server.AuthRatePerMinute < 0 {
		return fmt.Errorf("AUTH_RATE_PER_MINUTE must not be negative")
	}
	return nil
}

func findConfigFile() string {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnvVar)); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range defaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
