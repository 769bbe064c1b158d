package config

import (
	"encoding/json"
	"os"

	"github.com/avolkovs/vitrina/internal/flagx"
	"github.com/avolkovs/vitrina/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. It uses timex.Duration for interval fields, which
// allows parsing both string values such as "168h" and integer
// nanoseconds. After unmarshalling, its fields are copied into the
// runtime Config.
type JsonConfig struct {
	Environment        string         `json:"environment"`
	EndpointAddrAPI    string         `json:"endpoint_addr_api"`
	EndpointAddrBridge string         `json:"endpoint_addr_bridge"`
	DatabaseDSN        string         `json:"database_dsn"`
	SecretKey          string         `json:"secret_key"`
	TokenValidity      timex.Duration `json:"token_validity"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags. When no file is named, nothing is loaded. Only
// non-zero values override the current Config. An unreadable or invalid
// file panics: a half-applied config is worse than no start.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Environment != "" {
		config.Environment = c.Environment
	}
	if c.EndpointAddrAPI != "" {
		config.EndpointAddrAPI = c.EndpointAddrAPI
	}
	if c.EndpointAddrBridge != "" {
		config.EndpointAddrBridge = c.EndpointAddrBridge
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = c.TokenValidity.Duration
	}
}
