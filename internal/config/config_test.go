package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	t.Setenv(key, "")
	if got := getEnv(key, "3010"); got != "3010" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "3010")
	}

	t.Setenv(key, "8080")
	if got := getEnv(key, "3010"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "8080")
	}
}

func TestLoadReadsAuthAndPorts(t *testing.T) {
	t.Setenv("APP_PORT", "1234")
	t.Setenv("APP_BASIC_USER", "user")
	t.Setenv("APP_BASIC_PASS", "pass")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("CRON_SPEC", "")

	cfg := Load()
	if cfg.AppPort != "1234" {
		t.Fatalf("AppPort = %q, want %q", cfg.AppPort, "1234")
	}
	if cfg.BasicAuthUser != "user" || cfg.BasicAuthPass != "pass" {
		t.Fatalf("BasicAuthUser/Pass not loaded correctly: %+v", cfg)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
		t.Fatalf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.CronSpec != "" {
		t.Fatalf("empty CRON_SPEC should disable the probe, got %q", cfg.CronSpec)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "CORS_ALLOW_ORIGINS", "REQUEST_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.AppPort != "3010" || cfg.LogLevel != "info" || cfg.RequestTimeout != time.Minute {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if len(cfg.CORSAllowOrigins) != 1 || cfg.CORSAllowOrigins[0] != "*" {
		t.Fatalf("CORSAllowOrigins = %v", cfg.CORSAllowOrigins)
	}
}

func TestGetDurationRejectsGarbage(t *testing.T) {
	t.Setenv("TEST_TIMEOUT", "soon")
	if got := getDuration("TEST_TIMEOUT", time.Second); got != time.Second {
		t.Fatalf("getDuration = %v, want default", got)
	}
}

func TestLoadDotEnvKeepsExistingVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TEST_DOTENV_NEW=from-file\nTEST_DOTENV_SET=from-file\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("TEST_DOTENV_SET", "from-env")
	t.Setenv("TEST_DOTENV_NEW", "")
	os.Unsetenv("TEST_DOTENV_NEW")

	loadDotEnv(path)
	defer os.Unsetenv("TEST_DOTENV_NEW")

	if got := os.Getenv("TEST_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("TEST_DOTENV_NEW = %q", got)
	}
	if got := os.Getenv("TEST_DOTENV_SET"); got != "from-env" {
		t.Fatalf("existing variable overridden: %q", got)
	}

	// a missing file is not an error
	loadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
}
