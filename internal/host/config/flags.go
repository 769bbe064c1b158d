package config

import (
	"flag"
	"os"
	"time"

	"github.com/avolkovs/vitrina/internal/flagx"
)

// parseFlags populates selected host Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   public API bind address (e.g., ":3000")
//	-b string   bridge bind address (e.g., "127.0.0.1:47831")
//	-d string   database DSN ("file:..." selects SQLite)
//	-s string   token signing secret
//	-m string   environment mode ("development"/"production")
//	-t int      token validity, hours
//
// The function first filters os.Args to only the flags it recognizes
// using flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-d", "-s", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrAPI, "a", config.EndpointAddrAPI, "address and port of the public API")
	fs.StringVar(&config.EndpointAddrBridge, "b", config.EndpointAddrBridge, "address and port of the privileged bridge")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")
	fs.StringVar(&config.Environment, "m", config.Environment, "environment mode")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Hours()), "token validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Hour
}
