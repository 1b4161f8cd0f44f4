package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port        int
	LogLevel    string
	CatalogPath string
	DB          DB
	Disposition Disposition
	Kafka       Kafka
	RateLimit   RateLimit
	Auth        Auth
	Debug       Debug

	// EnvFileLoaded reports whether a .env file was read.
	EnvFileLoaded bool
}

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN returns the postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Disposition stores disposition generation and expiry settings.
type Disposition struct {
	ExpiryInterval time.Duration // 0 disables the sweeper
	DefaultTTL     time.Duration
	CargoLabel     string
	WeightClass    int
}

// Kafka stores job-event consumer settings.
type Kafka struct {
	Brokers   []string
	JobsTopic string
	GroupID   string
}

// Enabled reports whether the consumer has enough settings to start.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && k.JobsTopic != "" && k.GroupID != ""
}

// RateLimit stores token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Auth stores bearer token settings.
type Auth struct {
	JWTSecret string
}

// Debug stores profiling listener settings. An empty Addr disables the listener.
type Debug struct {
	Addr string
	User string
	Pass string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        defaultPort,
		LogLevel:    defaultLogLevel,
		CatalogPath: defaultCatalogPath,
		DB:          DefaultDB(),
		Disposition: DefaultDisposition(),
		Kafka:       DefaultKafka(),
		RateLimit:   DefaultRateLimit(),
	}
	cfg.EnvFileLoaded = godotenv.Load(".env") == nil

	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.fromFlags(os.Args[1:]); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	var errs []error
	intEnv(&errs, "PORT", &c.Port)
	strEnv("LOG_LEVEL", &c.LogLevel)
	strEnv("CATALOG_PATH", &c.CatalogPath)

	strEnv("POSTGRES_HOST", &c.DB.Host)
	strEnv("POSTGRES_USER", &c.DB.User)
	strEnv("POSTGRES_PASSWORD", &c.DB.Pass)
	strEnv("POSTGRES_DB", &c.DB.Name)
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if _, err := strconv.ParseUint(v, 10, 16); err != nil {
			errs = append(errs, fmt.Errorf("POSTGRES_PORT: %w", err))
		} else {
			c.DB.Port = v
		}
	}

	durationEnv(&errs, "DISPOSITION_EXPIRY_INTERVAL", &c.Disposition.ExpiryInterval)
	durationEnv(&errs, "DISPOSITION_DEFAULT_TTL", &c.Disposition.DefaultTTL)
	strEnv("DISPOSITION_CARGO_LABEL", &c.Disposition.CargoLabel)
	intEnv(&errs, "DISPOSITION_WEIGHT_CLASS", &c.Disposition.WeightClass)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitList(v)
	}
	strEnv("KAFKA_JOBS_TOPIC", &c.Kafka.JobsTopic)
	strEnv("KAFKA_GROUP_ID", &c.Kafka.GroupID)

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_ENABLED: %w", err))
		}
		c.RateLimit.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_RATE: %w", err))
		}
		c.RateLimit.Rate = f
	}
	intEnv(&errs, "RATE_LIMIT_BURST", &c.RateLimit.Burst)
	durationEnv(&errs, "RATE_LIMIT_TTL", &c.RateLimit.TTL)
	intEnv(&errs, "RATE_LIMIT_MAX_BUCKETS", &c.RateLimit.MaxBuckets)

	strEnv("AUTH_JWT_SECRET", &c.Auth.JWTSecret)

	strEnv("DEBUG_ADDR", &c.Debug.Addr)
	strEnv("DEBUG_USER", &c.Debug.User)
	strEnv("DEBUG_PASS", &c.Debug.Pass)

	return errors.Join(errs...)
}

func (c *Config) fromFlags(args []string) error {
	fs := pflag.CommandLine
	port := fs.IntP("port", "p", c.Port, "port to listen on")
	catalog := fs.String("catalog", c.CatalogPath, "path to the city catalog (json or yaml)")
	level := fs.String("log-level", c.LogLevel, "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	c.Port = *port
	c.CatalogPath = *catalog
	c.LogLevel = *level
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		return errors.New("catalog path is empty")
	}
	if c.Disposition.ExpiryInterval < 0 {
		return fmt.Errorf("invalid disposition expiry interval: %s", c.Disposition.ExpiryInterval)
	}
	if c.Disposition.DefaultTTL <= 0 {
		return fmt.Errorf("invalid disposition ttl: %s", c.Disposition.DefaultTTL)
	}
	if c.Disposition.WeightClass < 0 {
		return fmt.Errorf("invalid disposition weight class: %d", c.Disposition.WeightClass)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rate limit enabled with non-positive rate or burst")
	}
	return nil
}

func strEnv(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func intEnv(errs *[]error, key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = n
}

func durationEnv(errs *[]error, key string, dst *time.Duration) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return
	}
	*dst = d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
