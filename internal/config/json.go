package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wxycd4448755reginafisher/EndangeredLangFHE/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Delay fields
// are given in milliseconds so the file stays self-describing without a
// duration-string parser. Only non-zero values overlay the runtime Config.
type JsonConfig struct {
	Backend string `json:"backend"`

	SQLitePath  string `json:"sqlite_path"`
	BadgerPath  string `json:"badger_path"`
	RedisAddr   string `json:"redis_addr"`
	RedisDB     int    `json:"redis_db"`
	DatabaseDSN string `json:"database_dsn"`

	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3Bucket       string `json:"s3_bucket"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`

	EndpointID string `json:"endpoint_id"`
	NetworkID  int64  `json:"network_id"`

	KeyFile            string `json:"key_file"`
	PageSize           int    `json:"page_size"`
	ValidityWindowDays int    `json:"validity_window_days"`

	ReviewDelayMs int64 `json:"review_delay_ms"`
	RevealDelayMs int64 `json:"reveal_delay_ms"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	applyJson(cfg, &jc)
}

func applyJson(cfg *Config, jc *JsonConfig) {
	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.SQLitePath != "" {
		cfg.SQLitePath = jc.SQLitePath
	}
	if jc.BadgerPath != "" {
		cfg.BadgerPath = jc.BadgerPath
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.RedisDB != 0 {
		cfg.RedisDB = jc.RedisDB
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.EndpointID != "" {
		cfg.EndpointID = jc.EndpointID
	}
	if jc.NetworkID != 0 {
		cfg.NetworkID = jc.NetworkID
	}
	if jc.KeyFile != "" {
		cfg.KeyFile = jc.KeyFile
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.ValidityWindowDays != 0 {
		cfg.ValidityWindowDays = jc.ValidityWindowDays
	}
	if jc.ReviewDelayMs != 0 {
		cfg.ReviewDelay = time.Duration(jc.ReviewDelayMs) * time.Millisecond
	}
	if jc.RevealDelayMs != 0 {
		cfg.RevealDelay = time.Duration(jc.RevealDelayMs) * time.Millisecond
	}
}
