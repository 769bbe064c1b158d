package main

import (
	"context"
	"log"

	"github.com/avolkovs/vitrina/internal/host"
	"github.com/avolkovs/vitrina/internal/host/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := host.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
