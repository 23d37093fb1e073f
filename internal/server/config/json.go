package config

import (
	"encoding/json"
	"os"
	"time"

	"custdesk/internal/flagx"
	"custdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It uses
// timex.Duration for interval fields, which allows parsing both string
// values such as "1h" and integer nanoseconds. After unmarshalling, its
// fields are copied into the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	AllowedOrigin               string         `json:"allowed_origin"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. If no file is given, Config is left untouched.
// Read or unmarshal errors panic; the caller may recover if desired.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	}
	if c.AllowedOrigin != "" {
		config.AllowedOrigin = c.AllowedOrigin
	}
}
