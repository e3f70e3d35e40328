package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/dfarun/internal/app"
	"github.com/specialistvlad/dfarun/internal/cli"
	"github.com/specialistvlad/dfarun/internal/hcl"
	"github.com/specialistvlad/dfarun/internal/json"
	"github.com/specialistvlad/dfarun/internal/loader"
	"github.com/specialistvlad/dfarun/internal/yaml"
)

// main is the entrypoint for the dfarun application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLoader wires every supported document format.
func newLoader() *loader.Loader {
	return loader.New(
		loader.Format{Name: "hcl", Extensions: hcl.Extensions, Loader: hcl.NewLoader()},
		loader.Format{Name: "yaml", Extensions: yaml.Extensions, Loader: yaml.NewLoader()},
		loader.Format{Name: "json", Extensions: json.Extensions, Loader: json.NewLoader()},
	)
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Panics past this point are programmer errors; report them as a
	// regular failure instead of a stack trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	dfaApp := app.NewApp(outW, errW, appConfig, newLoader())
	return dfaApp.Run(context.Background())
}
