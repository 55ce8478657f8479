package codegen_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/staticmap/codegen"
	"github.com/amp-labs/staticmap/envutil"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "routes_staticmap.go", codegen.OutputPath("routes.yaml"))
	assert.Equal(t, filepath.Join("a", "b", "codes_staticmap.go"),
		codegen.OutputPath(filepath.Join("a", "b", "codes.json")))
}

func TestRunGeneratesAndChecks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "routes.yaml", routesYAML)
	output := codegen.OutputPath(input)

	cfg := codegen.Config{
		Inputs:  []string{input},
		Workers: 2,
		Logger:  slogt.New(t),
	}

	require.NoError(t, codegen.Run(t.Context(), cfg))

	code, err := os.ReadFile(output)
	require.NoError(t, err)
	mustParse(t, code)

	cfg.Check = true
	require.NoError(t, codegen.Run(t.Context(), cfg))

	// Editing the definition without regenerating makes the output stale.
	writeFile(t, dir, "routes.yaml", routesYAML+"  - {key: func3, value: handleFunc3}\n")

	err = codegen.Run(t.Context(), cfg)
	require.ErrorIs(t, err, codegen.ErrStale)
	assert.Contains(t, err.Error(), input)

	// Check mode never writes.
	after, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, code, after)
}

func TestRunCheckMissingOutput(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "routes.yaml", routesYAML)

	err := codegen.Run(t.Context(), codegen.Config{
		Inputs: []string{input},
		Check:  true,
		Logger: slogt.New(t),
	})
	require.ErrorIs(t, err, codegen.ErrStale)
}

func TestRunExplicitOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "routes.yaml", routesYAML)
	output := filepath.Join(dir, "zz_routes.go")

	require.NoError(t, codegen.Run(t.Context(), codegen.Config{
		Inputs: []string{input},
		Output: output,
		Logger: slogt.New(t),
	}))

	assert.FileExists(t, output)
	assert.NoFileExists(t, codegen.OutputPath(input))

	err := codegen.Run(t.Context(), codegen.Config{
		Inputs: []string{input, input},
		Output: output,
	})
	require.ErrorIs(t, err, codegen.ErrOutputWithManyInputs)
}

func TestRunCollectsEveryFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", routesYAML)
	dup := writeFile(t, dir, "dup.yaml", routesYAML+"  - {key: func1, value: again}\n")
	unknown := writeFile(t, dir, "bad.txt", "")

	err := codegen.Run(t.Context(), codegen.Config{
		Inputs:  []string{good, dup, unknown},
		Workers: 3,
		Logger:  slogt.New(t),
	})
	require.Error(t, err)
	require.ErrorIs(t, err, codegen.ErrUnknownFileType)
	assert.Contains(t, err.Error(), dup)
	assert.Contains(t, err.Error(), unknown)
	assert.NotContains(t, err.Error(), good+":")

	assert.FileExists(t, codegen.OutputPath(good))
	assert.NoFileExists(t, codegen.OutputPath(dup))
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()

	input := writeFile(t, t.TempDir(), "routes.yaml", routesYAML)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := codegen.Run(ctx, codegen.Config{Inputs: []string{input}, Logger: slogt.New(t)})
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, codegen.OutputPath(input))
}

func TestConfigFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		if _, set := os.LookupEnv(codegen.EnvWorkers); set {
			t.Skip(codegen.EnvWorkers + " is set in the environment")
		}

		if _, set := os.LookupEnv(codegen.EnvHash); set {
			t.Skip(codegen.EnvHash + " is set in the environment")
		}

		cfg, err := codegen.ConfigFromEnv(t.Context())
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, codegen.DefaultHash, cfg.Hash)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), codegen.EnvWorkers, "8")
		ctx = envutil.WithEnvOverride(ctx, codegen.EnvHash, "sha256")

		cfg, err := codegen.ConfigFromEnv(ctx)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, "sha256", cfg.Hash)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		ctx := envutil.WithEnvOverride(t.Context(), codegen.EnvWorkers, "0")

		_, err := codegen.ConfigFromEnv(ctx)
		require.ErrorIs(t, err, envutil.ErrNotPositive)

		ctx = envutil.WithEnvOverride(t.Context(), codegen.EnvWorkers, "2")
		ctx = envutil.WithEnvOverride(ctx, codegen.EnvHash, "md5")

		_, err = codegen.ConfigFromEnv(ctx)
		require.ErrorIs(t, err, envutil.ErrInvalidChoice)
	})
}
