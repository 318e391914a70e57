package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kula-app/rangeprint/internal/config"
	"github.com/kula-app/rangeprint/internal/logging"
	"github.com/kula-app/rangeprint/internal/printer"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the range was printed.
// If the run function returns an error, the input could not be read or the output could not be written.
//
// The logic of the run function must stay isolated so it can be tested in parallel.
func run(ctx context.Context, args []string, _ func(key string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	name := "rangeprint"
	if len(args) > 0 {
		name = args[0]
		args = args[1:]
	}

	// The program takes no flags; the flag set only provides -h and rejects anything else
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s\n\nReads a number n from standard input and prints 1 to n.\n", name)
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	// Stop writing a long range when the process is interrupted
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Diagnostics go to stderr so stdout only carries the prompt and the range
	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel))
	logger.Debug("configuration loaded",
		"bit_size", cfg.BitSize,
		"log_level", cfg.LogLevel)

	p := printer.NewPrinter(logger, cfg)
	if err := p.Run(ctx, stdin, stdout); err != nil {
		logger.Debug("range printer failed", "error", err)
		return fmt.Errorf("failed to print range: %w", err)
	}

	return nil
}
