package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/dfarun/internal/app"
	"github.com/specialistvlad/dfarun/internal/regexgen"
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
	flagSet := flag.NewFlagSet("dfarun", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
dfarun - Validate and run deterministic finite automata.

Usage:
  dfarun [options] DFA_FILE [INPUT]
  dfarun -check [options] DFA_PATH
  dfarun -graph dot|mermaid [options] DFA_FILE

Arguments:
  DFA_FILE
    Path to a .hcl, .yaml, .yml or .json DFA document.
  DFA_PATH
    A DFA document or a directory of them (check mode).
  INPUT
    The input string to run. Omitted means the empty string.

Options:
`)
		flagSet.PrintDefaults()
	}

	dfaFlag := flagSet.String("dfa", "", "Path to the DFA document.")
	dFlag := flagSet.String("d", "", "Path to the DFA document (shorthand).")
	inputFlag := flagSet.String("input", "", "Input string to run.")
	iFlag := flagSet.String("i", "", "Input string to run (shorthand).")
	separatorFlag := flagSet.String("separator", "", "Separator between input symbols. Empty means one symbol per character.")
	checkFlag := flagSet.Bool("check", false, "Check the accept, reject and regex-generated strings of each document.")
	graphFlag := flagSet.String("graph", "", "Print the DFA as a graph. Options: 'dot' or 'mermaid'.")
	outputFlag := flagSet.String("output", "text", "Report format. Options: 'text' or 'json'.")
	generateFlag := flagSet.Int("generate", regexgen.DefaultLimit, "Maximum number of strings generated from a document's regex. Negative disables generation.")
	maxRepeatFlag := flagSet.Int("max-repeat", regexgen.DefaultMaxRepeat, "Maximum repetitions of '*' and '+' when generating strings.")
	workersFlag := flagSet.Int("workers", 4, "Number of documents checked concurrently.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	positional := flagSet.Args()

	path := ""
	if *dfaFlag != "" {
		path = *dfaFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if len(positional) > 0 {
		path = positional[0]
		positional = positional[1:]
	}
	slog.Debug("DFA path determined.", "path", path)

	if path == "" {
		slog.Debug("No DFA path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	input := ""
	if *inputFlag != "" {
		input = *inputFlag
	} else if *iFlag != "" {
		input = *iFlag
	} else if len(positional) > 0 {
		input = positional[0]
		positional = positional[1:]
	}
	if len(positional) > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(positional, " "))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DFAPath:   path,
		Input:     input,
		Separator: *separatorFlag,
		Check:     *checkFlag,
		Graph:     strings.ToLower(*graphFlag),
		Output:    strings.ToLower(*outputFlag),
		Generate:  *generateFlag,
		MaxRepeat: *maxRepeatFlag,
		Workers:   *workersFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
