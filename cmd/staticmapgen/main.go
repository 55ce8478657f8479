// Command staticmapgen generates Go source for static lookup tables from YAML
// or JSON definitions. Entries are sorted while generating, so the resulting
// package-level table only verifies their order when the program starts.
//
// Usage:
//
//	staticmapgen [-o output.go] [-check] [-hash xxh3|xxh64|sha256] [-workers n] input.yaml...
//
// STATICMAPGEN_WORKERS and STATICMAPGEN_HASH set the defaults for -workers and
// -hash. With -check nothing is written; the exit status is 1 when any output
// is missing or out of date.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/amp-labs/staticmap/codegen"
	"github.com/amp-labs/staticmap/hashing"
	"github.com/amp-labs/staticmap/logger"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)

	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	log := logger.ConfigureLogging(ctx, "staticmapgen", logger.WithOutput(stderr))

	cfg, err := codegen.ConfigFromEnv(ctx)
	if err != nil {
		log.Error("Invalid environment", "error", err)

		return exitUsage
	}

	flags := flag.NewFlagSet("staticmapgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: staticmapgen [flags] input.yaml...")
		flags.PrintDefaults()
	}

	flags.StringVar(&cfg.Output, "o", "", "output file (only with a single input; default <input>_staticmap.go)")
	flags.BoolVar(&cfg.Check, "check", false, "verify outputs are up to date instead of writing them")
	flags.StringVar(&cfg.Hash, "hash", cfg.Hash, "fingerprint algorithm: xxh3, xxh64 or sha256")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of inputs processed at once")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if _, err := hashing.ByName(cfg.Hash); err != nil {
		fmt.Fprintln(stderr, err)
		flags.Usage()

		return exitUsage
	}

	cfg.Inputs = flags.Args()
	if len(cfg.Inputs) == 0 {
		flags.Usage()

		return exitUsage
	}

	cfg.Logger = log

	if err := codegen.Run(ctx, cfg); err != nil {
		log.Error("Generation failed", "error", err)

		return exitError
	}

	return exitOK
}
