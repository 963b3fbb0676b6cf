package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
	LogLevel       logging.Level

	DBDriver      string
	DBPath        string
	DBBusyTimeout time.Duration
	DBAutoMigrate bool

	AuthJWTSecret  string
	AuthTokenTTL   time.Duration
	AuthBcryptCost int

	CacheEnabled       bool
	CacheTTL           time.Duration
	CORSAllowedOrigins []string

	SeedEnabled bool
	SeedWorkers int

	SwaggerEnabled bool

	UptraceEnabled bool
	UptraceDSN     string

	PprofEnabled bool
	PprofAddr    string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	DBDriverSQLite = "sqlite"
	DBDriverMemory = "memory"
)

const devJWTSecret = "football-league-dev-secret"

// LoadEnvFile merges KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is ignored.
func LoadEnvFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "football-league-api"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		DBDriver:               strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", DBDriverSQLite))),
		DBPath:                 strings.TrimSpace(getEnv("DB_PATH", "data/tournament.db")),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		UptraceDSN:             strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PprofAddr:              strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		PyroscopeServerAddress: strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	cfg.LogLevel, err = logging.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}

	durations := []struct {
		key      string
		fallback string
		dst      *time.Duration
	}{
		{key: "APP_READ_TIMEOUT", fallback: "10s", dst: &cfg.ReadTimeout},
		{key: "APP_WRITE_TIMEOUT", fallback: "15s", dst: &cfg.WriteTimeout},
		{key: "APP_REQUEST_TIMEOUT", fallback: "10s", dst: &cfg.RequestTimeout},
		{key: "DB_BUSY_TIMEOUT", fallback: "5s", dst: &cfg.DBBusyTimeout},
		{key: "AUTH_TOKEN_TTL", fallback: "168h", dst: &cfg.AuthTokenTTL},
		{key: "CACHE_TTL", fallback: "60s", dst: &cfg.CacheTTL},
		{key: "PYROSCOPE_UPLOAD_RATE", fallback: "15s", dst: &cfg.PyroscopeUploadRate},
	}
	for _, d := range durations {
		value, err := time.ParseDuration(getEnv(d.key, d.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		if value <= 0 {
			return Config{}, fmt.Errorf("%s must be > 0", d.key)
		}
		*d.dst = value
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	flags := []struct {
		key      string
		fallback string
		dst      *bool
	}{
		{key: "DB_AUTO_MIGRATE", fallback: "true", dst: &cfg.DBAutoMigrate},
		{key: "CACHE_ENABLED", fallback: "true", dst: &cfg.CacheEnabled},
		{key: "SEED_ENABLED", fallback: "true", dst: &cfg.SeedEnabled},
		{key: "SWAGGER_ENABLED", fallback: swaggerDefault, dst: &cfg.SwaggerEnabled},
		{key: "UPTRACE_ENABLED", fallback: "false", dst: &cfg.UptraceEnabled},
		{key: "PPROF_ENABLED", fallback: "false", dst: &cfg.PprofEnabled},
		{key: "PYROSCOPE_ENABLED", fallback: "false", dst: &cfg.PyroscopeEnabled},
	}
	for _, f := range flags {
		value, err := strconv.ParseBool(getEnv(f.key, f.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", f.key, err)
		}
		*f.dst = value
	}

	cfg.AuthBcryptCost, err = getEnvAsInt("AUTH_BCRYPT_COST", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_BCRYPT_COST: %w", err)
	}
	// bcrypt accepts costs 4..31.
	if cfg.AuthBcryptCost < 4 || cfg.AuthBcryptCost > 31 {
		return Config{}, fmt.Errorf("AUTH_BCRYPT_COST must be between 4 and 31")
	}

	cfg.SeedWorkers, err = getEnvAsInt("SEED_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_WORKERS: %w", err)
	}
	if cfg.SeedWorkers < 1 {
		return Config{}, fmt.Errorf("SEED_WORKERS must be >= 1")
	}

	cfg.AuthJWTSecret = strings.TrimSpace(getEnv("AUTH_JWT_SECRET", ""))
	if cfg.AuthJWTSecret == "" {
		if appEnv == EnvProd {
			return Config{}, fmt.Errorf("AUTH_JWT_SECRET is required when APP_ENV=%s", EnvProd)
		}
		cfg.AuthJWTSecret = devJWTSecret
	}

	switch cfg.DBDriver {
	case DBDriverSQLite, DBDriverMemory:
	default:
		return Config{}, fmt.Errorf("invalid DB_DRIVER %q: valid values are %s, %s", cfg.DBDriver, DBDriverSQLite, DBDriverMemory)
	}
	if cfg.DBDriver == DBDriverSQLite && cfg.DBPath == "" {
		return Config{}, fmt.Errorf("DB_PATH cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	if cfg.PyroscopeEnabled {
		if cfg.PyroscopeServerAddress == "" {
			return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
		}
		if cfg.PyroscopeAppName == "" {
			return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
