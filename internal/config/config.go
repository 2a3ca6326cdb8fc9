package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	CORSAllowOrigins []string
	BasicAuthUser    string
	BasicAuthPass    string

	LogLevel    string
	SourcesFile string

	// CronSpec drives the coverage probe; empty disables it.
	CronSpec  string
	RedisAddr string

	RequestTimeout time.Duration
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set win over the file.
func Load() *Config {
	loadDotEnv(".env")

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "3010"),
		CORSAllowOrigins: getList("CORS_ALLOW_ORIGINS", []string{"*"}),
		BasicAuthUser:    os.Getenv("APP_BASIC_USER"),
		BasicAuthPass:    os.Getenv("APP_BASIC_PASS"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SourcesFile:      os.Getenv("SOURCES_FILE"),
		CronSpec:         getEnvAllowEmpty("CRON_SPEC", "*/30 * * * *"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RequestTimeout:   getDuration("REQUEST_TIMEOUT", 60*time.Second),
	}

	slog.Info("config loaded", "port", cfg.AppPort, "cron", cfg.CronSpec, "redis", cfg.RedisAddr != "")
	return cfg
}

func loadDotEnv(path string) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignore unreadable env file", "path", path, "err", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvAllowEmpty lets an explicitly empty variable override the default.
func getEnvAllowEmpty(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// getList splits a comma separated variable, dropping empty entries.
func getList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
