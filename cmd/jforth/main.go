// Command jforth is the process entry point for the Forth engine: option
// parsing, startup-script/stdin chaining, and logging wiring all live here.
// Package forth itself has no knowledge of any of it, so it stays usable
// as a library independent of any particular CLI shape.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/mccoy-forth/jforth/internal/config"
	"github.com/mccoy-forth/jforth/internal/fileinput"
	"github.com/mccoy-forth/jforth/internal/flushio"
	"github.com/mccoy-forth/jforth/internal/logio"

	forth "github.com/mccoy-forth/jforth"
)

//go:embed startup_default.f
var embeddedStartup string

type options struct {
	Script     string `long:"script" description:"Startup Forth source to run before the interactive session (default: the config's startup script path, startup.f)" value-name:"path"`
	NoStartup  bool   `long:"no-startup" description:"Skip the startup script entirely and read only from standard input"`
	ConfigPath string `long:"config" description:"Path to a jforth TOML config file, overriding the default ~/.config/jforth/config.toml" value-name:"path"`
	Trace      bool   `long:"trace" description:"Log each NEXT-loop dispatch to standard error"`
	Help       bool   `long:"help" description:"Show this help"`
}

func main() {
	logger := &logio.Logger{}
	logger.SetOutput(os.Stderr)

	if err := run(os.Args[1:], logger); err != nil {
		logger.Errorf("%v", err)
	}
	os.Exit(logger.ExitCode())
}

func run(args []string, logger *logio.Logger) error {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[options]"
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if opts.Help {
		parser.WriteHelp(os.Stdout)
		return nil
	}

	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	input, err := buildInput(opts, cfg)
	if err != nil {
		return err
	}

	engOpts := []forth.Option{
		forth.WithParamStackSize(cfg.Engine.ParamStackSize),
		forth.WithReturnStackSize(cfg.Engine.ReturnStackSize),
		forth.WithDictLimit(forth.Addr(cfg.Engine.DictLimitCells)),
		forth.WithGrowChunk(cfg.Engine.GrowChunkCells),
		forth.WithInput(input),
		forth.WithOutput(os.Stdout),
	}
	if opts.Trace || cfg.Trace.Enabled {
		if cfg.Trace.OutputFile != "" {
			if err := teeTraceToFile(logger, cfg.Trace.OutputFile); err != nil {
				return err
			}
		}
		engOpts = append(engOpts, forth.WithLogf(logger.Leveledf("TRACE")))
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stdout, "jforth ready.")
	}

	eng := forth.New(engOpts...)
	return eng.Run()
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// buildInput assembles the engine's initial input stream: the startup
// script (the --script path if present, else the config's script path,
// falling back to the embedded default bootstrap when no file exists there;
// any other open error is returned) followed by standard input,
// chained through internal/fileinput.Input's FIFO queue so the engine
// just sees one continuous rune stream.
func buildInput(opts options, cfg *config.Config) (*fileinput.Input, error) {
	if opts.NoStartup {
		return &fileinput.Input{Queue: []io.Reader{os.Stdin}}, nil
	}

	scriptPath := opts.Script
	if scriptPath == "" {
		scriptPath = cfg.Startup.ScriptPath
	}

	var startup io.Reader
	f, err := os.Open(scriptPath) // #nosec G304 -- operator-supplied startup script path
	switch {
	case err == nil:
		startup = f
	case errors.Is(err, os.ErrNotExist):
		startup = namedReader{Reader: strings.NewReader(embeddedStartup), name: "<embedded-default>"}
	default:
		return nil, fmt.Errorf("opening startup script %s: %w", scriptPath, err)
	}

	return &fileinput.Input{Queue: []io.Reader{startup, os.Stdin}}, nil
}

// namedReader gives an io.Reader a Name(), which fileinput.Input uses to
// label diagnostics (Location.Name) for each queued stream.
type namedReader struct {
	io.Reader
	name string
}

func (n namedReader) Name() string { return n.name }

// teeTraceToFile wraps the logger's output stream so --trace lines land on
// both the original stream (normally stderr) and the configured trace
// file, using Logger.Wrap to pipe the output through a filter that fans a
// single write out to both destinations via flushio.WriteFlushers rather
// than rewriting the write path itself.
func teeTraceToFile(logger *logio.Logger, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644) // #nosec G304 -- operator-supplied trace file path
	if err != nil {
		return fmt.Errorf("opening trace output file %s: %w", path, err)
	}
	logger.Wrap(func(wc io.WriteCloser) io.WriteCloser {
		return traceTee{wf: flushio.WriteFlushers(flushio.NewWriteFlusher(wc), flushio.NewWriteFlusher(f)), f: f}
	})
	return nil
}

// traceTee combines two flushio.WriteFlusher destinations into a single
// io.WriteCloser, closing only the trace file on Close (the original stream
// is owned by the logger itself and is never closed here).
type traceTee struct {
	wf flushio.WriteFlusher
	f  *os.File
}

func (t traceTee) Write(p []byte) (int, error) { return t.wf.Write(p) }

func (t traceTee) Close() error {
	if err := t.wf.Flush(); err != nil {
		return err
	}
	return t.f.Close()
}
