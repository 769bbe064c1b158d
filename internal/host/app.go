// Package host initializes and runs the privileged process: it owns the
// user database, the token signing secret, and the in-memory secure
// storage, and serves the public auth API plus the loopback bridge.
package host

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/avolkovs/vitrina/internal/auth"
	"github.com/avolkovs/vitrina/internal/host/bridgesrv"
	"github.com/avolkovs/vitrina/internal/host/config"
	"github.com/avolkovs/vitrina/internal/host/httpapi"
	"github.com/avolkovs/vitrina/internal/host/securestore"
	"github.com/avolkovs/vitrina/internal/host/storage"
	"github.com/avolkovs/vitrina/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *storage.Manager
	secure *securestore.Store
	auth   *auth.Service
	bridge *bridgesrv.Server
	api    *httpapi.AuthHandler
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	secure, err := securestore.New()
	if err != nil {
		return nil, fmt.Errorf("secure store init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidity)
	authSvc := auth.NewService(store.Users(), tokens, secure, logger)

	return &App{
		config: cfg,
		logger: logger,
		store:  store,
		secure: secure,
		auth:   authSvc,
		bridge: bridgesrv.NewServer(cfg.EndpointAddrBridge, secure, logger),
		api:    httpapi.NewAuthHandler(authSvc, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startBridgeServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.bridge.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startAPIServer(ctx context.Context, cancelFunc context.CancelFunc) {
	srv := httpapi.NewHTTPServer(app.config.EndpointAddrAPI, app.api.Routes(), app.logger)
	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting host...", "env", app.config.Environment)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startAPIServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startBridgeServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
