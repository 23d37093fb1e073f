package config

import (
	"encoding/json"
	"os"
	"time"

	"custdesk/internal/flagx"
	"custdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL   string         `json:"server_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	CredentialsPath string         `json:"credentials_path"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. If no file is given, Config is left untouched.
// Read or unmarshal errors panic; the caller may recover if desired.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialsPath != "" {
		cfg.CredentialsPath = jc.CredentialsPath
	}
}
