package manual

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/testutil"
)

func TestCollect_AllValidAnswers(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	out := &bytes.Buffer{}

	raw, err := New(strings.NewReader("0\n1\n3\n1.0\n2\n0.5\n"), out).Collect(ctx)

	require.NoError(t, err)
	assert.Equal(t, config.RawFieldMap{"n0": 0, "h": 1, "nk": 3, "a": 1.0, "b": 2.0, "c": 0.5}, raw)
	assert.Equal(t, 6, strings.Count(out.String(), "Enter "))
	assert.Contains(t, out.String(), "Enter nk (integer): ")
	assert.Contains(t, out.String(), "Enter c (float): ")
}

func TestCollect_RepromptsUntilWellTyped(t *testing.T) {
	// --- Arrange ---
	// n0 gets three bad answers before a good one; a gets one.
	ctx, logs := testutil.LogContext(t)
	answers := strings.Join([]string{"zero", "", "0.5", "0", "1", "3", "one", "1.0", "2.0", "0.5"}, "\n") + "\n"
	out := &bytes.Buffer{}

	// --- Act ---
	raw, err := New(strings.NewReader(answers), out).Collect(ctx)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 0, raw["n0"])
	assert.Equal(t, 1.0, raw["a"])
	assert.Equal(t, 4, strings.Count(out.String(), "Enter n0 (integer): "))
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a (float): "))
	assert.Contains(t, out.String(), `Invalid integer value "zero", try again.`)
	assert.Contains(t, out.String(), `Invalid float value "one", try again.`)
	assert.Contains(t, logs.String(), "attempt=3")
}

func TestCollect_ClosedInput(t *testing.T) {
	ctx, _ := testutil.LogContext(t)

	raw, err := New(strings.NewReader("0\n1\n"), io.Discard).Collect(ctx)

	require.Nil(t, raw)
	require.ErrorIs(t, err, config.ErrManualEntry)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	var cfgErr *config.Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "nk", cfgErr.Field)
}
