package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"MODE", "HTTP_ADDR", "LOG_MODE", "LOG_REQUESTS", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "GRADING_RULES_FILE", "CORS_ORIGINS_OFFLINE"} {
		t.Setenv(k, "")
	}
	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeOffline || cfg.HTTPAddr != ":8080" || cfg.LogMode != "dev" || !cfg.LogRequests {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL != 8*time.Hour || cfg.SessionSweepInterval != 5*time.Minute {
		t.Fatalf("durations = %v %v", cfg.SessionTTL, cfg.SessionSweepInterval)
	}
	if got := cfg.CORSOrigins(); len(got) != 3 || got[0] != "http://localhost:3000" {
		t.Fatalf("CORSOrigins = %v", got)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MODE", "online")
	t.Setenv("LOG_MODE", "")
	t.Setenv("LOG_REQUESTS", "no")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("SESSION_SWEEP_INTERVAL", "10s")
	t.Setenv("CORS_ORIGINS_ONLINE", " https://a.example , ,https://b.example")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != ModeOnline || cfg.LogMode != "prod" || cfg.LogRequests {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.SessionTTL != 90*time.Minute || cfg.SessionSweepInterval != 10*time.Second {
		t.Fatalf("durations = %v %v", cfg.SessionTTL, cfg.SessionSweepInterval)
	}
	want := []string{"https://a.example", "https://b.example"}
	if got := cfg.CORSOrigins(); !reflect.DeepEqual(got, want) {
		t.Fatalf("CORSOrigins = %v want %v", got, want)
	}
}

func TestFromEnvBadDurations(t *testing.T) {
	t.Setenv("SESSION_TTL", "8 hours")
	t.Setenv("SESSION_SWEEP_INTERVAL", "-1m")
	cfg, err := FromEnv()
	if err == nil {
		t.Fatal("bad durations accepted")
	}
	for _, k := range []string{"SESSION_TTL", "SESSION_SWEEP_INTERVAL"} {
		if !strings.Contains(err.Error(), k) {
			t.Errorf("error %q does not name %s", err, k)
		}
	}
	// the rest of the config is still usable
	if cfg.SessionTTL != 8*time.Hour || cfg.SessionSweepInterval != 5*time.Minute {
		t.Fatalf("durations = %v %v", cfg.SessionTTL, cfg.SessionSweepInterval)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("HTTP_ADDR=:9999\nGRADING_RULES_FILE=rules.yaml\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HTTP_ADDR", "") // restores the original value on cleanup
	os.Unsetenv("HTTP_ADDR")
	t.Setenv("GRADING_RULES_FILE", "preset.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set
	if cfg.HTTPAddr != ":9999" || cfg.GradingRulesFile != "preset.yaml" {
		t.Fatalf("cfg = %+v", cfg)
	}
}
