// Command librarydesk issues and returns books and registers users from the command line.
//
// Usage:
//
//	librarydesk issue -id B-1 -title Dune -to "Ada Lovelace" [-date 2024-03-01]
//	librarydesk return -id B-1 [-date 2024-03-05]
//	librarydesk outstanding
//	librarydesk register -name "Ada Lovelace" -class 10B -dob 2010-12-10 -address "1 Main St" -phone 555-0100 -email ada@example.org
//	librarydesk users
//
// Storage is chosen through LIBRARYDESK_* environment variables, optionally from a .env file.
// Exit code 0 means success, 1 a refused operation or a storage error, 2 a usage error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/aiswo/librarydesk/library"
	"github.com/aiswo/librarydesk/library/shared/shell/config"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2

	shutdownTimeout = 5 * time.Second
)

var errUsage = errors.New("usage error")

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		printUsage(stderr)
		return exitUsage
	}

	logger := slog.New(slog.NewJSONHandler(stderr, nil)).With("correlation_id", uuid.NewString(), "command", args[0])

	settings, err := config.LoadStoreSettings()
	if err != nil {
		logger.Error("loading settings failed", "error", err.Error())
		return exitUsage
	}

	providers, err := config.NewObservabilityProviders(ctx, settings)
	if err != nil {
		logger.Error("setting up observability failed", "error", err.Error())
		return exitFailure
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := providers.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("observability shutdown failed", "error", shutdownErr.Error())
		}
	}()

	obs := providers.Observability()
	obs.Logger = logger

	backend, closer, err := config.OpenBackend(ctx, settings, obs)
	if err != nil {
		logger.Error("opening storage failed", "engine", settings.Engine, "error", err.Error())
		return exitFailure
	}

	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			logger.Warn("closing storage failed", "error", closeErr.Error())
		}
	}()

	opts := []library.Option{library.WithLogger(logger)}
	if providers.Enabled() {
		opts = append(opts,
			library.WithContextualLogger(obs.ContextualLogger),
			library.WithMetrics(obs.Metrics),
			library.WithTracing(obs.Tracing),
		)
	}

	env := environment{
		storeConfig: settings.StoreConfig(backend),
		options:     opts,
		stdout:      stdout,
		stderr:      stderr,
		now:         time.Now,
	}

	err = cmd(ctx, env, args[1:])

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		_, _ = fmt.Fprintln(stderr, err)
		return exitFailure
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "usage: librarydesk <issue|return|outstanding|register|users> [flags]")
}
