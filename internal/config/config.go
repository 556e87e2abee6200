// Package config holds runtime settings for the corpus registry CLI.
package config

import "time"

// Store backends selectable via Config.Backend.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendBadger   = "badger"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// Config holds runtime settings.
//
// Backend selects the key-value store implementation; the remaining
// store fields apply only to the matching backend. EndpointID and
// NetworkID identify the store endpoint in the reveal challenge, so
// signatures are bound to one deployment.
type Config struct {
	Backend string

	SQLitePath  string
	BadgerPath  string
	RedisAddr   string
	RedisDB     int
	DatabaseDSN string

	S3Region       string
	S3BaseEndpoint string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string

	EndpointID string
	NetworkID  int64

	KeyFile            string
	PageSize           int
	ValidityWindowDays int

	// Pacing delays applied before review transitions and after
	// reveal signatures. Zero disables them.
	ReviewDelay time.Duration
	RevealDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.SQLitePath = "corpus.db"
	c.BadgerPath = "corpus-badger"
	c.RedisAddr = "127.0.0.1:6379"
	c.EndpointID = "corpus-registry"
	c.NetworkID = 1
	c.KeyFile = "identity.key"
	c.PageSize = 5
	c.ValidityWindowDays = 30
	c.ReviewDelay = 3 * time.Second
	c.RevealDelay = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
