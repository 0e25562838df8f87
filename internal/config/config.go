package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port     int
	LogLevel string
	Pprof    PprofConfig
	Auth     AuthConfig
	Parcels  ParcelsConfig
}

// PprofConfig stores the optional profiling server settings.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// AuthConfig stores login and token settings.
// MatronPasswordHash wins over MatronPassword when both are set.
type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	MatronEmail        string
	MatronPassword     string
	MatronPasswordHash string
}

// ParcelsConfig stores parcel desk settings.
type ParcelsConfig struct {
	SeedDemo         bool
	OperationTimeout time.Duration
	// StatsInterval is the period of the desk gauge refresh; zero disables it.
	StatsInterval time.Duration
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:     DefaultPort(),
		LogLevel: defaultLogLevel,
		Pprof:    DefaultPprof(),
		Auth:     DefaultAuth(),
		Parcels:  DefaultParcels(),
	}
	if err := fromEnv(cfg); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	pflag.BoolVar(&cfg.Pprof.Enabled, "pprof", cfg.Pprof.Enabled, "enable the pprof server")
	pflag.BoolVar(&cfg.Parcels.SeedDemo, "seed-demo", cfg.Parcels.SeedDemo, "seed demo parcels and students")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return err
	}
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)

	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", cfg.Pprof.Enabled); err != nil {
		return err
	}
	cfg.Pprof.Addr = envString("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envString("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envString("PPROF_PASS", cfg.Pprof.Pass)

	cfg.Auth.JWTSecret = envString("AUTH_JWT_SECRET", cfg.Auth.JWTSecret)
	if cfg.Auth.TokenTTL, err = envDuration("AUTH_TOKEN_TTL", cfg.Auth.TokenTTL); err != nil {
		return err
	}
	cfg.Auth.MatronEmail = envString("MATRON_EMAIL", cfg.Auth.MatronEmail)
	cfg.Auth.MatronPassword = envString("MATRON_PASSWORD", cfg.Auth.MatronPassword)
	cfg.Auth.MatronPasswordHash = envString("MATRON_PASSWORD_HASH", cfg.Auth.MatronPasswordHash)

	if cfg.Parcels.SeedDemo, err = envBool("PARCELS_SEED_DEMO", cfg.Parcels.SeedDemo); err != nil {
		return err
	}
	if cfg.Parcels.OperationTimeout, err = envDuration("PARCELS_OPERATION_TIMEOUT", cfg.Parcels.OperationTimeout); err != nil {
		return err
	}
	if cfg.Parcels.StatsInterval, err = envDuration("PARCELS_STATS_INTERVAL", cfg.Parcels.StatsInterval); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("AUTH_JWT_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("invalid AUTH_TOKEN_TTL: %s", c.Auth.TokenTTL)
	}
	if c.Auth.MatronEmail == "" {
		return fmt.Errorf("MATRON_EMAIL must not be empty")
	}
	if c.Auth.MatronPasswordHash == "" && c.Auth.MatronPassword == "" {
		return fmt.Errorf("MATRON_PASSWORD or MATRON_PASSWORD_HASH must be set")
	}
	if c.Parcels.OperationTimeout <= 0 {
		return fmt.Errorf("invalid PARCELS_OPERATION_TIMEOUT: %s", c.Parcels.OperationTimeout)
	}
	if c.Parcels.StatsInterval < 0 {
		return fmt.Errorf("invalid PARCELS_STATS_INTERVAL: %s", c.Parcels.StatsInterval)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
