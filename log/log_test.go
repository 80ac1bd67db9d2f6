package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.neoscout.dev/neoscout/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    slog.Level
		expectError bool
	}{
		"error level": {
			input:    "error",
			expected: slog.LevelError,
		},
		"warn level": {
			input:    "warn",
			expected: slog.LevelWarn,
		},
		"warning level": {
			input:    "warning",
			expected: slog.LevelWarn,
		},
		"info level": {
			input:    "info",
			expected: slog.LevelInfo,
		},
		"debug level": {
			input:    "debug",
			expected: slog.LevelDebug,
		},
		"case insensitive": {
			input:    "INFO",
			expected: slog.LevelInfo,
		},
		"unknown level": {
			input:       "verbose",
			expectError: true,
		},
		"empty level": {
			input:       "",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := log.GetLevel(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogLevel)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, lvl)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Format
		expectError bool
	}{
		"json format": {
			input:    "json",
			expected: log.FormatJSON,
		},
		"logfmt format": {
			input:    "logfmt",
			expected: log.FormatLogfmt,
		},
		"text format": {
			input:    "text",
			expected: log.FormatText,
		},
		"case insensitive": {
			input:    "JSON",
			expected: log.FormatJSON,
		},
		"unknown format": {
			input:       "xml",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := log.GetFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrUnknownLogFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestNewHandler_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := log.NewHandler(&buf, slog.LevelInfo, log.FormatJSON)
	require.NotNil(t, handler)

	logger := slog.New(handler)
	logger.Info("hello", "key", "value")

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler, err := log.NewHandlerFromStrings(&buf, "debug", "text")
	require.NoError(t, err)
	require.NotNil(t, handler)

	_, err = log.NewHandlerFromStrings(&buf, "nope", "text")
	require.ErrorIs(t, err, log.ErrInvalidArgument)

	_, err = log.NewHandlerFromStrings(&buf, "debug", "nope")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
}

func TestLogLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(log.NewHandler(&buf, slog.LevelWarn, log.FormatText))

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestConfig_NewHandler(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	cfg.Level = "info"
	cfg.Format = "logfmt"

	var buf bytes.Buffer

	handler, err := cfg.NewHandler(&buf)
	require.NoError(t, err)
	require.NotNil(t, handler)
}

func TestConfig_RegisterFlags_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("zero config", func(t *testing.T) {
		t.Parallel()

		cfg := log.NewConfig()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)

		require.NoError(t, flags.Parse(nil))
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, string(log.FormatText), cfg.Format)
	})

	t.Run("preset values become defaults", func(t *testing.T) {
		t.Parallel()

		cfg := log.NewConfig()
		cfg.Format = string(log.FormatLogfmt)

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)

		require.NoError(t, flags.Parse(nil))
		assert.Equal(t, string(log.FormatLogfmt), cfg.Format)
	})

	t.Run("flags override presets", func(t *testing.T) {
		t.Parallel()

		cfg := log.NewConfig()
		cfg.Format = string(log.FormatLogfmt)

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)

		require.NoError(t, flags.Parse([]string{"--log-format=json"}))
		assert.Equal(t, string(log.FormatJSON), cfg.Format)
	})
}

func TestConfig_RegisterCompletions(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	require.NoError(t, cfg.RegisterCompletions(cmd))

	completionFn, ok := cmd.GetFlagCompletionFunc("log-level")
	require.True(t, ok)

	values, directive := completionFn(cmd, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Equal(t, log.GetAllLevelStrings(), values)
}
