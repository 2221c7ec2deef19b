// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/quentinrf/bh1750/pkg/bh1750"
)

// Config holds application configuration
type Config struct {
	Port           string
	RecordInterval time.Duration
	Retention      time.Duration // readings older than this are pruned, 0 keeps all
	RepoType       string        // "memory" | "sqlite" | "mysql"
	DBPath         string        // SQLite database file path (used when RepoType=sqlite)
	MySQLDSN       string        // used when RepoType=mysql
	SensorType     string        // "mock" | "bh1750"
	I2CBus         string        // periph bus name, "" for the first one
	SensorAddr     uint16
	Dome           bool
	TLSCert        string // path to this service's certificate
	TLSKey         string // path to this service's private key
	TLSCA          string // path to the CA certificate
	LogLevel       zerolog.Level
}

// Load reads configuration from environment variables. Variables not already
// set are first filled from the file named by ENV_FILE (default ".env") if it
// exists.
func Load() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := Config{
		Port:       getenv("PORT", "50051"),
		RepoType:   getenv("REPO_TYPE", "memory"),
		DBPath:     getenv("DB_PATH", "./light.db"),
		MySQLDSN:   os.Getenv("MYSQL_DSN"),
		SensorType: getenv("SENSOR_TYPE", "mock"),
		I2CBus:     os.Getenv("I2C_BUS"),
		TLSCert:    os.Getenv("TLS_CERT"),
		TLSKey:     os.Getenv("TLS_KEY"),
		TLSCA:      os.Getenv("TLS_CA"),
	}

	var err error
	if cfg.RecordInterval, err = duration("RECORD_INTERVAL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.Retention, err = duration("RETENTION", 30*24*time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.SensorAddr, err = ParseAddr(getenv("BH1750_ADDR", "0x23")); err != nil {
		return Config{}, fmt.Errorf("invalid BH1750_ADDR: %w", err)
	}

	if cfg.Dome, err = strconv.ParseBool(getenv("BH1750_DOME", "false")); err != nil {
		return Config{}, fmt.Errorf("invalid BH1750_DOME: %w", err)
	}

	if cfg.LogLevel, err = zerolog.ParseLevel(getenv("LOG_LEVEL", "info")); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.RepoType == "mysql" && cfg.MySQLDSN == "" {
		return Config{}, errors.New("REPO_TYPE=mysql needs MYSQL_DSN")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// ParseAddr parses a 7-bit I2C address in any Go integer base and
// accepts only the two addresses a BH1750 can strap to.
func ParseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 7)
	if err != nil {
		return 0, err
	}
	addr := uint16(v)
	if addr != bh1750.AddrLow && addr != bh1750.AddrHigh {
		return 0, fmt.Errorf("address 0x%02x is not a BH1750 address, want 0x23 or 0x5c", addr)
	}
	return addr, nil
}
