// Package config loads runtime configuration for the CLI client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the host auth API
//	-b string   base URL of the privileged bridge ("" disables the bridge)
//	-l string   SQLite DSN of the local credential store
//	-p          plain storage only (skip the host's encrypted storage)
//
// # JSON schema
//
//	{
//	  "api_endpoint_addr": "http://127.0.0.1:3000",
//	  "bridge_endpoint_addr": "http://127.0.0.1:47831",
//	  "local_db_path": "file:vitrina-cli.db",
//	  "use_secure_storage": true
//	}
//
// Note: This package does not read environment variables directly; the
// host owns the environment, and the client asks for allow-listed values
// over the bridge instead.
package config
