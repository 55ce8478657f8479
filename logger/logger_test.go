package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/staticmap/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))

		out = append(out, rec)
	}

	return out
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	ctx := WithSubsystem(t.Context(), "overridden")
	Get(ctx).Info("overridden subsystem")

	ctx = With(ctx, "table", "routes", "entries", 4)
	Get(ctx).Info("with values")

	Get(WithMuted(ctx, true)).Error("never printed")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 3)

	assert.Equal(t, "test", recs[0]["subsystem"])
	assert.Equal(t, "overridden", recs[1]["subsystem"])
	assert.Equal(t, "routes", recs[2]["table"])
	assert.InDelta(t, 4, recs[2]["entries"], 0)
}

func TestLegacy(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "test",
		JSON:        true,
		MinLevel:    slog.LevelDebug,
		LegacyLevel: slog.LevelWarn,
		Output:      &buf,
	})

	log.Println("legacy line")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "WARN", recs[0]["level"])
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "warn")

	ConfigureLogging(ctx, "staticmapgen", WithOutput(&buf))

	Get().Info("filtered out")
	Get().Warn("kept")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "kept", recs[0]["msg"])
	assert.Equal(t, "staticmapgen", recs[0]["subsystem"])
}

func TestFromBase(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := With(WithSubsystem(t.Context(), "codegen"), "input", "routes.yaml")

	FromBase(base, nil, ctx).Info("hello")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "codegen", recs[0]["subsystem"])
	assert.Equal(t, "routes.yaml", recs[0]["input"])
}

func TestWithDoesNotAlias(t *testing.T) {
	t.Parallel()

	base := With(t.Context(), "a", 1)
	left := With(base, "b", 2)
	right := With(base, "c", 3)

	assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
	assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
}
