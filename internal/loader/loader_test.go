package loader

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/rangeeval/internal/config"
	"github.com/vk/rangeeval/internal/manual"
	"github.com/vk/rangeeval/internal/testutil"
	"github.com/vk/rangeeval/internal/validate"
)

func TestLoad_EveryFormatYieldsTheSameRecord(t *testing.T) {
	for name, content := range testutil.Fixtures {
		t.Run(name, func(t *testing.T) {
			ctx, _ := testutil.LogContext(t)
			path := testutil.WriteConfig(t, name, content)

			l, err := New(ctx, path)
			require.NoError(t, err)
			require.Equal(t, StateSourceChecked, l.State())

			rec, err := l.Load(ctx)

			require.NoError(t, err)
			assert.Equal(t, testutil.ExampleRecord, rec)
			assert.Equal(t, StateReady, l.State())
			assert.Equal(t, config.FormatFromPath(name), l.Format())
		})
	}
}

func TestLoad_MissingFieldInEveryFormat(t *testing.T) {
	for _, field := range config.Fields {
		for name, content := range testutil.FixturesWithout(field.Name) {
			t.Run(field.Name+"/"+name, func(t *testing.T) {
				ctx, _ := testutil.LogContext(t)
				path := testutil.WriteConfig(t, name, content)
				l, err := New(ctx, path)
				require.NoError(t, err)

				rec, err := l.Load(ctx)

				require.ErrorIs(t, err, config.ErrValidation)
				require.ErrorIs(t, err, validate.ErrMissingField)
				require.Equal(t, config.Record{}, rec)
				require.Equal(t, StateFailed, l.State())

				var cfgErr *config.Error
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, field.Name, cfgErr.Field)
				assert.Equal(t, path, cfgErr.Path)
			})
		}
	}
}

func TestLoad_NonNumericValueInEveryFormat(t *testing.T) {
	for _, field := range config.Fields {
		for name, content := range testutil.FixturesWithValue(field.Name, "abc") {
			t.Run(field.Name+"/"+name, func(t *testing.T) {
				ctx, _ := testutil.LogContext(t)
				path := testutil.WriteConfig(t, name, content)

				rec, err := Load(ctx, path)

				require.ErrorIs(t, err, config.ErrValidation)
				require.ErrorIs(t, err, validate.ErrNotNumeric)
				require.Equal(t, config.Record{}, rec)

				var cfgErr *config.Error
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, field.Name, cfgErr.Field)
			})
		}
	}
}

func TestLoad_YAMLNaNIsATypedError(t *testing.T) {
	testCases := []struct {
		name  string
		field string
		value string
	}{
		{name: "nan float", field: "a", value: ".nan"},
		{name: "nan integer", field: "h", value: ".NaN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.LogContext(t)
			path := testutil.WriteConfig(t, "config.yaml", testutil.FixturesWithValue(tc.field, tc.value)["config.yaml"])

			rec, err := Load(ctx, path)

			require.ErrorIs(t, err, config.ErrValidation)
			require.ErrorIs(t, err, validate.ErrNotNumeric)
			require.Equal(t, config.Record{}, rec)
		})
	}
}

func TestNew_UnsupportedExtensionIsReportedBeforeTheFileIsOpened(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	// The file does not exist: reaching the file system would yield
	// SourceNotFound instead.
	path := filepath.Join(t.TempDir(), "config.ini")

	l, err := New(ctx, path)

	require.Nil(t, l)
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)
	require.ErrorContains(t, err, `extension ".ini"`)
}

func TestNew_MissingSourceFailsAtConstruction(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	path := filepath.Join(t.TempDir(), "absent.json")

	l, err := New(ctx, path)

	require.Nil(t, l)
	require.ErrorIs(t, err, config.ErrSourceNotFound)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.NotContains(t, logs.String(), "Decoding source.")
}

func TestLoad_HeaderOnlyTableIsADecodeError(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	path := testutil.WriteConfig(t, "config.csv", "n0,h,nk,a,b,c\n")

	_, err := Load(ctx, path)

	require.ErrorIs(t, err, config.ErrDecode)
	assert.Equal(t, config.KindDecode, config.KindOf(err))
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "(csv)")
}

func TestLoad_RepeatedCallsDecodeAgain(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	path := testutil.WriteConfig(t, "config.txt", "n0=0 h=1 nk=3 a=1.0 b=2.0 c=0.5")
	l, err := New(ctx, path)
	require.NoError(t, err)

	first, err := l.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("n0=5 h=2 nk=9 a=0.0 b=0.0 c=1.0"), 0600))
	second, err := l.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, testutil.ExampleRecord, first)
	assert.Equal(t, config.NewRecord(5, 2, 9, 0, 0, 1), second)
}

func TestLoad_ManualEntryWhenNoPath(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	prompter := manual.New(strings.NewReader("0\n1\nthree\n3\n1.0\n2.0\n0.5\n"), io.Discard)

	l, err := New(ctx, "", WithCollector(prompter))
	require.NoError(t, err)
	rec, err := l.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, testutil.ExampleRecord, rec)
	assert.Equal(t, config.FormatUnknown, l.Format())
	assert.Contains(t, logs.String(), "source=manual")
}

func TestLoad_ManualEntryInputClosed(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	prompter := manual.New(strings.NewReader(""), io.Discard)

	rec, err := Load(ctx, "", WithCollector(prompter))

	require.ErrorIs(t, err, config.ErrManualEntry)
	require.Equal(t, config.Record{}, rec)
}

type failingValidator struct{}

func (failingValidator) Validate(context.Context, config.RawFieldMap) (config.Record, error) {
	return config.Record{}, errors.New("rejected")
}

func TestLoad_PlainValidatorErrorsAreClassified(t *testing.T) {
	ctx, _ := testutil.LogContext(t)
	path := testutil.WriteConfig(t, "config.json", testutil.Fixtures["config.json"])

	_, err := Load(ctx, path, WithValidator(failingValidator{}))

	require.ErrorIs(t, err, config.ErrValidation)
	require.ErrorContains(t, err, "rejected")
}

func TestLoad_StateTransitionsAreLogged(t *testing.T) {
	ctx, logs := testutil.LogContext(t)
	path := testutil.WriteConfig(t, "config.yaml", testutil.Fixtures["config.yaml"])

	_, err := Load(ctx, path)
	require.NoError(t, err)

	for _, want := range []string{"to=source_checked", "to=decoding", "to=validating", "to=ready"} {
		assert.Contains(t, logs.String(), want)
	}
}
