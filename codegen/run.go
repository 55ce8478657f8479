package codegen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/staticmap/envutil"
	staticerrors "github.com/amp-labs/staticmap/errors"
	"github.com/amp-labs/staticmap/logger"
)

const (
	// EnvWorkers overrides the default worker count.
	EnvWorkers = "STATICMAPGEN_WORKERS"
	// EnvHash overrides the default fingerprint algorithm.
	EnvHash = "STATICMAPGEN_HASH"

	defaultWorkerCount = 4
	outputSuffix       = "_staticmap.go"
	outputPerm         = 0o644
)

// ErrOutputWithManyInputs is returned when an explicit output path is given
// together with more than one input.
var ErrOutputWithManyInputs = errors.New("an output path can only be used with a single input")

// Config describes one generator run.
type Config struct {
	// Inputs are definition files.
	Inputs []string
	// Output overrides the output path. Only valid with one input.
	Output string
	// Check verifies outputs are current instead of writing them.
	Check bool
	// Hash names the fingerprint algorithm.
	Hash string
	// Workers bounds how many inputs are processed at once.
	Workers int
	// Logger receives progress logs. Nil means logger.Get.
	Logger *slog.Logger
}

// ConfigFromEnv returns a Config whose Workers and Hash come from
// STATICMAPGEN_WORKERS and STATICMAPGEN_HASH, falling back to defaults.
func ConfigFromEnv(ctx context.Context) (Config, error) {
	workers, err := envutil.Int(ctx, EnvWorkers,
		envutil.Default(defaultWorkerCount),
		envutil.Positive()).Value()
	if err != nil {
		return Config{}, err
	}

	hashName, err := envutil.String(ctx, EnvHash,
		envutil.Default(DefaultHash),
		envutil.OneOf("xxh3", "xxh64", "sha256")).Value()
	if err != nil {
		return Config{}, err
	}

	return Config{Workers: workers, Hash: hashName}, nil
}

// OutputPath is where the generated code for input goes by default:
// "routes.yaml" becomes "routes_staticmap.go" in the same directory.
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputSuffix
}

// Run processes every input on a bounded worker pool. Failures do not stop
// other inputs; every failure is returned joined, each prefixed with its
// input path.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Output != "" && len(cfg.Inputs) > 1 {
		return ErrOutputWithManyInputs
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkerCount
	}

	base := cfg.Logger
	if base == nil {
		base = logger.Get(ctx)
	}

	log := logger.FromBase(base, logger.WithSubsystem(ctx, "codegen"))
	log.Debug("Starting generator", "inputs", len(cfg.Inputs), "workers", workers, "check", cfg.Check)

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var (
		mut  sync.Mutex
		errs staticerrors.Collection
	)

	tasks := make([]pond.Task, 0, len(cfg.Inputs))

	for _, input := range cfg.Inputs {
		output := cfg.Output
		if output == "" {
			output = OutputPath(input)
		}

		tasks = append(tasks, pool.Submit(func() {
			fileCtx := logger.With(logger.WithSubsystem(ctx, "codegen"), "input", input)

			err := processFile(fileCtx, logger.FromBase(base, fileCtx), input, output, cfg)
			if err == nil {
				return
			}

			mut.Lock()
			defer mut.Unlock()

			errs.Add(fmt.Errorf("%s: %w", input, err))
		}))
	}

	for _, task := range tasks {
		// Task errors only come from a panic inside processFile.
		if err := task.Wait(); err != nil {
			mut.Lock()
			errs.Add(err)
			mut.Unlock()
		}
	}

	return errs.GetError()
}

func processFile(ctx context.Context, log *slog.Logger, input, output string, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	def, err := Load(input)
	if err != nil {
		return err
	}

	if cfg.Check {
		existing, err := os.ReadFile(output)
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist", ErrStale, output)
		} else if err != nil {
			return err
		}

		if err := def.Validate(); err != nil {
			return err
		}

		if IsStale(existing, def) {
			return fmt.Errorf("%w: %s", ErrStale, output)
		}

		log.Debug("Output is up to date", "output", output)

		return nil
	}

	code, err := Generate(def, Options{Hash: cfg.Hash})
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, code, outputPerm); err != nil {
		return err
	}

	log.Info("Generated static map", "output", output, "entries", len(def.Entries))

	return nil
}
