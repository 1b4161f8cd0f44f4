package config

import "time"

const (
	defaultPort        = 8080
	defaultLogLevel    = "info"
	defaultCatalogPath = "data/cities.json"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "test_db",
}

var defaultDisposition = Disposition{
	ExpiryInterval: time.Minute,
	DefaultTTL:     72 * time.Hour,
	CargoLabel:     "Any",
	WeightClass:    22,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       5,
	Burst:      10,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultDisposition returns the default disposition settings.
func DefaultDisposition() Disposition {
	return defaultDisposition
}

// DefaultKafka returns the default consumer settings. Brokers are unset, so the consumer is off.
func DefaultKafka() Kafka {
	return Kafka{JobsTopic: "job-events", GroupID: "dispatch-worker"}
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
