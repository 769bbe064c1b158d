package config

import (
	"flag"
	"os"

	"github.com/avolkovs/vitrina/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the host auth API (default from Config)
//	-b string   base URL of the privileged bridge; "" disables the bridge
//	-l string   SQLite DSN of the local credential store
//	-p          plain storage: skip the host's encrypted storage
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-l", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpointAddr, "a", cfg.APIEndpointAddr, "base URL of the host auth API")
	fs.StringVar(&cfg.BridgeEndpointAddr, "b", cfg.BridgeEndpointAddr, "base URL of the privileged bridge (empty disables)")
	fs.StringVar(&cfg.LocalDBPath, "l", cfg.LocalDBPath, "SQLite DSN of the local credential store")
	plain := fs.Bool("p", !cfg.UseSecureStorage, "store credentials in plain local storage only")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.UseSecureStorage = !*plain
}
