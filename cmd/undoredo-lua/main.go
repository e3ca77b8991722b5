// Package main runs Lua scripts with the undoredo module installed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/dshills/undoredo/luahistory"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds parsed command line flags.
type options struct {
	chunk       string
	logLevel    string
	verbose     bool
	showVersion bool
	files       []string
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "undoredo-lua %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if err := execute(opts, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("undoredo-lua", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.chunk, "e", "", "Lua code to run before any script files")
	fs.StringVar(&opts.logLevel, "log-level", "off", "Log level (trace, debug, info, warn, error, off)")
	fs.BoolVar(&opts.verbose, "v", false, "Trace history transitions (same as -log-level trace)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "undoredo-lua - run Lua scripts with undo/redo histories\n\n")
		fmt.Fprintf(stderr, "Usage: undoredo-lua [options] [script.lua...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  undoredo-lua edit.lua                   Run a script\n")
		fmt.Fprintf(stderr, "  undoredo-lua -v edit.lua                Trace history transitions\n")
		fmt.Fprintf(stderr, "  undoredo-lua -e 'print(undoredo.new():len())'\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.verbose {
		opts.logLevel = "trace"
	}
	if hclog.LevelFromString(opts.logLevel) == hclog.NoLevel {
		return opts, errors.Errorf("invalid log level %q", opts.logLevel)
	}

	opts.files = fs.Args()
	if opts.chunk == "" && len(opts.files) == 0 && !opts.showVersion {
		fs.Usage()
		return opts, errors.New("no script given")
	}
	return opts, nil
}

func execute(opts options, stderr io.Writer) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "undoredo",
		Output: stderr,
		Level:  hclog.LevelFromString(opts.logLevel),
	})

	state, err := luahistory.NewState(luahistory.WithLogger(logger))
	if err != nil {
		return err
	}
	defer state.Close()

	if opts.chunk != "" {
		if err := state.DoString(opts.chunk); err != nil {
			return err
		}
	}
	for _, path := range opts.files {
		if err := state.DoFile(path); err != nil {
			return err
		}
	}
	return nil
}
