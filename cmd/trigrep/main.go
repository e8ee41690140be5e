package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/trigrep/trigrep/pkg/config"
	"github.com/trigrep/trigrep/pkg/proc"
	"github.com/trigrep/trigrep/pkg/report"
)

// Opts with all CLI options
type Opts struct {
	Files   []string `short:"f" long:"files" description:"input files to process"`
	Threads string   `short:"t" long:"threads" description:"number of parallel workers (default 1)"`
	Top     int      `long:"top" description:"maximum ranked sequences printed per unit (overrides config)"`
	Config  string   `long:"config" env:"TRIGREP_CONFIG" description:"path to optional config file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	rest, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)
	if opts.NoColor {
		color.NoColor = true
	}

	if len(rest) > 0 {
		log.Printf("[ERROR] unexpected positional arguments %v, pass input files with --files", rest)
		os.Exit(1)
	}

	if err := run(context.Background(), opts, os.Stdin, os.Stdout); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run selects the processing mode from the options and writes the report to
// stdout. Files with more than one worker fan out across parallel units,
// files with a single worker combine into one unit, and without files the
// input stream is processed as one unit.
func run(ctx context.Context, opts Opts, stdin io.Reader, stdout io.Writer) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	top := cfg.Output.Top
	if opts.Top > 0 {
		top = opts.Top
	}

	rawThreads := opts.Threads
	if rawThreads == "" && cfg.Processing.Workers > 1 {
		rawThreads = strconv.Itoa(cfg.Processing.Workers)
	}
	workers := proc.ResolveWorkers(rawThreads)

	p := proc.New(proc.Params{Workers: workers, Extensions: cfg.Processing.Extensions})
	rep := report.New(stdout, top)

	switch {
	case len(opts.Files) > 0 && workers > 1:
		log.Printf("[DEBUG] parallel mode, %d files, %d workers", len(opts.Files), workers)
		results, skipped, err := p.ProcessParallel(ctx, opts.Files)
		if err != nil {
			return err
		}
		rep.PrintAll(results)
		rep.PrintSkipped(skipped)
	case len(opts.Files) > 0:
		log.Printf("[DEBUG] combined mode, %d files", len(opts.Files))
		res, skipped, err := p.ProcessCombined(opts.Files)
		if err != nil {
			return err
		}
		rep.Print(res)
		rep.PrintSkipped(skipped)
	default:
		log.Printf("[DEBUG] stream mode")
		res, err := p.ProcessStream(stdin)
		if err != nil {
			return err
		}
		rep.Print(res)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stderr), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
