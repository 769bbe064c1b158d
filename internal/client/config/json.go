package config

import (
	"encoding/json"
	"os"

	"github.com/avolkovs/vitrina/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After
// parsing, values are copied into the runtime Config.
type JsonConfig struct {
	APIEndpointAddr string `json:"api_endpoint_addr"`
	// pointer so an explicit "" (bridge disabled) is distinguishable
	// from an absent key
	BridgeEndpointAddr *string `json:"bridge_endpoint_addr"`
	LocalDBPath        string  `json:"local_db_path"`
	UseSecureStorage   *bool   `json:"use_secure_storage"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later
// stages override earlier ones.
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

	if jc.APIEndpointAddr != "" {
		cfg.APIEndpointAddr = jc.APIEndpointAddr
	}
	if jc.BridgeEndpointAddr != nil {
		cfg.BridgeEndpointAddr = *jc.BridgeEndpointAddr
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
	if jc.UseSecureStorage != nil {
		cfg.UseSecureStorage = *jc.UseSecureStorage
	}
}
