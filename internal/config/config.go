package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode      Mode
	HTTPAddr  string
	PublicURL string
	LogMode   string // dev|prod

	LogRequests bool

	AuthSecret string

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	GradingRulesFile string // optional YAML with extra keyword rules

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

// Load reads a .env file when one exists, then builds the config from the
// environment. Variables already set win over the file.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv returns the config along with an error naming every variable that
// was set but could not be parsed. Those fields hold their defaults.
func FromEnv() (Config, error) {
	var errs []error
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	defLog := "dev"
	if mode == ModeOnline {
		defLog = "prod"
	}
	cfg := Config{
		Mode:                 mode,
		HTTPAddr:             envOr("HTTP_ADDR", ":8080"),
		PublicURL:            os.Getenv("PUBLIC_URL"),
		LogMode:              envOr("LOG_MODE", defLog),
		LogRequests:          envBool("LOG_REQUESTS", true),
		AuthSecret:           envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		SessionTTL:           envDuration("SESSION_TTL", 8*time.Hour, &errs),
		SessionSweepInterval: envDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute, &errs),
		GradingRulesFile:     os.Getenv("GRADING_RULES_FILE"),
		CORSOriginsOnline:    csvOr("CORS_ORIGINS_ONLINE", "https://learn.serendipity.ink"),
		CORSOriginsOffline:   csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:8081,http://localhost:19006"),
	}
	return cfg, errors.Join(errs...)
}

// CORSOrigins picks the origin list for the configured mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func envDuration(k string, def time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	if d < 0 {
		*errs = append(*errs, fmt.Errorf("%s: negative duration %q", k, v))
		return def
	}
	return d
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
