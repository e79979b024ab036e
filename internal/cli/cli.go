package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/nnc/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nnc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
nnc - compiles a neural network descriptor into a computation graph and
renders it as a Graphviz DOT file.

Usage:
  nnc [options] [GRAPH_PATH]

Arguments:
  GRAPH_PATH
    Path to the HCL network descriptor.

Options:
`)
		flagSet.PrintDefaults()
	}

	graphFlag := flagSet.String("graph", "", "Path to the network descriptor.")
	gFlag := flagSet.String("g", "", "Path to the network descriptor (shorthand).")
	outputFlag := flagSet.String("output", "", "Path of the rendered DOT file (default \""+app.DefaultOutputPath+"\").")
	oFlag := flagSet.String("o", "", "Path of the rendered DOT file (shorthand).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	seedFlag := flagSet.String("render-seed", "all", "Entries the renderer starts from. Options: 'all' or 'first'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := firstNonEmpty(*graphFlag, *gFlag)
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Graph path determined.", "path", path)

	if path == "" {
		slog.Debug("No graph path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	seed := strings.ToLower(*seedFlag)
	if seed != "all" && seed != "first" {
		return nil, false, &ExitError{Code: 2, Message: "invalid render-seed: must be 'all' or 'first'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		GraphPath:  path,
		OutputPath: firstNonEmpty(*outputFlag, *oFlag),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		RenderSeed: seed,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// firstNonEmpty prefers the long form of a flag over its shorthand.
func firstNonEmpty(long, short string) string {
	if long != "" {
		return long
	}
	return short
}
