// Package cli implements the interactive client: a small REPL over the
// auth flows plus the bridge-backed info commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/avolkovs/vitrina/internal/client/api"
	"github.com/avolkovs/vitrina/internal/client/bridge"
	"github.com/avolkovs/vitrina/internal/client/config"
	"github.com/avolkovs/vitrina/internal/client/credstore"
	"github.com/avolkovs/vitrina/internal/client/services"
	"github.com/avolkovs/vitrina/internal/logging"
)

// Bridge is the subset of the bridge client the CLI commands use.
// nil when the client runs without a bridge.
type Bridge interface {
	GetEnv(ctx context.Context, key string) string
	GetAppVersion(ctx context.Context) string
	GetAppPath(ctx context.Context, name string) string
}

type App struct {
	config *config.Config
	auth   *services.AuthService
	bridge Bridge

	reader *bufio.Reader
	out    io.Writer

	userEmail string
	closers   []func() error
}

// NewApp wires the client stack: bridge client (when configured), the
// credential store behind it, the API client, and the auth service.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	app := &App{
		config: cfg,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	local, err := credstore.OpenLocal(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, local.Close)

	var secure credstore.Store
	caps := credstore.Capabilities{}
	if cfg.BridgeEndpointAddr != "" {
		bc := bridge.NewClient(cfg.BridgeEndpointAddr)
		app.bridge = bc
		secure = credstore.NewSecureStore(bc)
		caps.HasBridge = true
		caps.HasSecureStorage = cfg.UseSecureStorage
	}

	creds := credstore.NewAdapter(caps, secure, local, logger)
	apiClient := api.NewClient(cfg.APIEndpointAddr)
	app.auth = services.NewAuthService(apiClient, creds, logger)

	return app, nil
}

func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userEmail)
}

// Run drives the REPL until exit or EOF. On startup it resolves any
// stored session so a returning user is greeted by name.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to vitrina CLI (type 'help' for commands)")

	if user, err := a.auth.CurrentUser(ctx); err == nil && user != nil {
		a.userEmail = user.Email
		fmt.Fprintf(a.out, "Signed in as %s\n", user.Email)
	}

	for {
		fmt.Fprintf(a.out, "vitrina %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.userEmail != "" {
				fmt.Fprintln(a.out, "Available commands: whoami, logout, version, path, env, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, version, exit")
			}
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "whoami":
			a.whoami(ctx)
		case "logout":
			a.logout(ctx)
		case "version":
			a.version(ctx)
		case "path":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: path <name>")
				continue
			}
			a.path(ctx, args[0])
		case "env":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: env <name>")
				continue
			}
			a.env(ctx, args[0])
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
