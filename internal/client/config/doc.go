// Package config loads runtime configuration for the custdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST backend
//	-t int      request timeout (seconds)
//	-d string   path of the local credentials database
//	-e          ephemeral mode: keep credentials in memory only
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "10s",
//	  "credentials_path": "custdesk.db"
//	}
package config
