package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Env struct {
	AppEnv      string        `envconfig:"ENV" default:"development"`
	AppAddr     string        `envconfig:"APP_ADDR" default:":8080"`
	GinMode     string        `envconfig:"GIN_MODE"`
	DatabaseDSN string        `envconfig:"DATABASE_DSN" default:"root:@tcp(127.0.0.1:3306)/colectivo?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	JWTTTL      time.Duration `envconfig:"JWT_TTL" default:"24h"`
	IntakeKey   string        `envconfig:"INTAKE_API_KEY"`
	RedisAddr   string        `envconfig:"REDIS_ADDR"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	CORSOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	AdminUser   string        `envconfig:"SEED_ADMIN_USER" default:"admin"`
	AdminPass   string        `envconfig:"SEED_ADMIN_PASSWORD" default:"admin123"`
}

// Production reports whether the process runs with production settings.
func (e Env) Production() bool {
	return strings.EqualFold(e.AppEnv, "production")
}

// LoadEnv reads the process environment. Outside production a local .env
// file, when present, overrides system variables.
func LoadEnv() (Env, error) {
	if !strings.EqualFold(os.Getenv("ENV"), "production") {
		_ = godotenv.Overload(".env")
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return Env{}, fmt.Errorf("load env: %w", err)
	}
	env.AppAddr = strings.TrimSpace(env.AppAddr)
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	return env, nil
}
