package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vk/rangeeval/internal/app"
)

// EnvPrefix prefixes the environment variable of every flag, e.g.
// RANGEEVAL_LOG_LEVEL for --log-level.
const EnvPrefix = "RANGEEVAL"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Explicit flags win over the positional path, which wins over environment
// variables, which win over defaults.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("rangeeval", pflag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
rangeeval - Load a six-field numeric configuration and tabulate
            a*sin(x) + b*cos(x) + |a*sin(x) - b*cos(x)| + c over x = n0, n0+h, ... <= nk.

Usage:
  rangeeval [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    A .json, .xml, .csv, .yaml/.yml, .txt or .hcl file. When omitted, the
    six fields are entered interactively.

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprintf(output, "\nEvery option can also be set through %s_<OPTION>, e.g. %s_LOG_LEVEL.\n", EnvPrefix, EnvPrefix)
	}

	flagSet.StringP("config", "c", "", "Path to the configuration file.")
	flagSet.String("render", "", "Print the loaded record as json, yaml, xml, csv, txt or hcl before evaluating.")
	flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flagSet); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := v.GetString("config")
	if !flagSet.Changed("config") && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one CONFIG_PATH, got %d", flagSet.NArg())}
	}
	slog.Debug("Config path determined.", "path", path)

	logFormat := strings.ToLower(v.GetString("log-format"))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(v.GetString("log-level"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:   path,
		RenderFormat: strings.ToLower(v.GetString("render")),
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
