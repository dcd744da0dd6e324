// Package main is the entry point for the lineedit batch editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	ConfigPath string
	ScriptPath string
	Keys       string
	OutputPath string
	LogLevel   string
	Watch      bool
	ListKeys   bool
	Input      string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if errors.Is(err, errVersion) {
		fmt.Fprintf(stdout, "lineedit %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logCfg := cfg.Logging()
	logCfg.Output = stderr
	logger := logging.New(logCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := &pipeline{
		opts:   opts,
		cfg:    cfg,
		log:    logger,
		stdout: stdout,
		stderr: stderr,
	}

	if opts.ListKeys {
		if err := p.listKeys(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if opts.Watch {
		err = p.watch(ctx)
	} else {
		err = p.runOnce(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

var errVersion = errors.New("version requested")

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	var showVersion bool

	fs := flag.NewFlagSet("lineedit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.ScriptPath, "script", "", "Lua edit script to run")
	fs.StringVar(&opts.ScriptPath, "s", "", "Lua edit script to run (shorthand)")
	fs.StringVar(&opts.Keys, "keys", "", "Key chords to replay before the script, e.g. \"Ctrl+End Enter x\"")
	fs.StringVar(&opts.OutputPath, "o", "", "Write the result here instead of in place (\"-\" for stdout)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	fs.BoolVar(&opts.Watch, "watch", false, "Re-run whenever the input file changes (requires -o)")
	fs.BoolVar(&opts.ListKeys, "list-keys", false, "Print the active key bindings and exit")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "lineedit - scriptable line editor\n\n")
		fmt.Fprintf(stderr, "Usage: lineedit [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lineedit -s fix.lua notes.txt          Edit notes.txt in place\n")
		fmt.Fprintf(stderr, "  lineedit -keys \"Ctrl+A Backspace\" -o - f  Print f after clearing it\n")
		fmt.Fprintf(stderr, "  lineedit -watch -s fix.lua -o out.txt in.txt\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if showVersion {
		return opts, errVersion
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.Input = fs.Arg(0)
	default:
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}

	if opts.LogLevel != "" && !logging.ValidLevel(opts.LogLevel) {
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}
	if opts.Watch && (opts.Input == "" || opts.OutputPath == "" || opts.OutputPath == "-") {
		return opts, errors.New("-watch needs an input file and an -o file")
	}
	if opts.Watch && samePath(opts.OutputPath, opts.Input) {
		return opts, errors.New("-watch cannot write to its own input")
	}

	return opts, nil
}

// samePath reports whether a and b name the same file once made absolute.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
