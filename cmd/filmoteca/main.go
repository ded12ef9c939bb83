// Command filmoteca is a terminal client for the movie catalog backend. It
// offers direct subcommands for scripting and an interactive browse mode that
// walks the same screens the mobile app has.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/filmoteca/filmoteca-cli/config"
	"github.com/filmoteca/filmoteca-cli/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	App    *bootstrap.App
}

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := bootstrap.InitLogger(cfg.IsDev)

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	app, err := bootstrap.NewApp(cfg, logger)
	if err != nil {
		logger.Error("wire application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("close application", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmdCtx := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		Config: cfg,
		App:    app,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1)
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Authenticate against the backend and persist the session",
			run:         runLogin,
		},
		"register": {
			name:        "register",
			description: "Create a new account (does not log in)",
			run:         runRegister,
		},
		"logout": {
			name:        "logout",
			description: "Discard the persisted session",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the persisted session and the screen it routes to",
			run:         runWhoami,
		},
		"movies": {
			name:        "movies",
			description: "List, inspect, create, update, or delete movies",
			run:         runMovies,
		},
		"genres": {
			name:        "genres",
			description: "List, inspect, create, update, or delete genres",
			run:         runGenres,
		},
		"browse": {
			name:        "browse",
			description: "Interactive catalog browser (role decides the screens offered)",
			run:         runBrowse,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: filmoteca <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, name := range []string{"login", "register", "logout", "whoami", "movies", "genres", "browse"} {
		c := commands()[name]
		if err := writef(os.Stdout, "  %-10s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
