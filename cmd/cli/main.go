package main

import (
	"context"
	"log"
	"os"

	"github.com/avolkovs/vitrina/internal/client/cli"
	"github.com/avolkovs/vitrina/internal/client/config"
	"github.com/avolkovs/vitrina/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	// The REPL owns stdout; diagnostics go to stderr.
	logger := logging.NewJSON(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)
}
