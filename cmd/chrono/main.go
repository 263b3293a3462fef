// Command chrono parses and inspects calendar values from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"chrono/internal/inspect"
	"chrono/internal/platform/config"
	"chrono/internal/platform/logger"
	"chrono/internal/platform/metrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run loads configuration and executes one command, returning the process
// exit code so deferred cleanup always runs.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "chrono: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, cfg, args, stdout, stderr)
}

func execute(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer, opts ...inspect.Option) int {
	log := logger.New(cfg.LogLevel, stderr)
	m := metrics.New()

	opts = append([]inspect.Option{
		inspect.WithLogger(log),
		inspect.WithMetrics(m),
		inspect.WithWorkers(cfg.Workers),
	}, opts...)
	a := &app{cfg: cfg, log: log, service: inspect.New(opts...)}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)

	if cfg.MetricsFile != "" {
		if werr := m.WriteTextfile(cfg.MetricsFile); werr != nil {
			log.Error("write metrics", "path", cfg.MetricsFile, "error", werr)
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errParseFailures):
		return 1
	default:
		fmt.Fprintf(stderr, "chrono: %v\n", err)
		return 1
	}
}
