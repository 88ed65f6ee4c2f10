// The tuplegen command generates the tuple types and their join,
// split and index operations. It is run by go generate in the
// tuple package directory:
//
//	go run ../cmd/tuplegen --dir .
//
// With --check, it reports whether the files in the directory
// are up to date instead of writing them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/rogpeppe/tupleops/internal/tuplegen"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	var (
		dir        string
		configPath string
		ceiling    int
		check      bool
		verbose    bool
	)
	flagSet := pflag.NewFlagSet("tuplegen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&dir, "dir", ".", "directory to write generated files to")
	flagSet.StringVar(&configPath, "config", "", "YAML or TOML configuration file (default: built-in tiers 16, 20, 24, 28, 32)")
	flagSet.IntVar(&ceiling, "max", 0, "generate only the tiers up to this maximum tuple length (0 means all)")
	flagSet.BoolVar(&check, "check", false, "check that the generated files are up to date instead of writing them")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log progress")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := tuplegen.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = tuplegen.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger.Info("loaded configuration", "path", configPath, "package", cfg.Package, "tiers", len(cfg.Tiers))
	}
	if ceiling != 0 {
		var err error
		cfg, err = cfg.Upto(ceiling)
		if err != nil {
			return err
		}
	}

	files, err := tuplegen.Generate(cfg)
	if err != nil {
		return err
	}
	if check {
		stale, err := tuplegen.Check(dir, files)
		for _, name := range stale {
			logger.Warn("stale generated file", "dir", dir, "file", name)
		}
		return err
	}
	if err := tuplegen.Write(dir, files); err != nil {
		return err
	}
	for _, f := range files {
		logger.Info("wrote file", "dir", dir, "file", f.Name, "bytes", len(f.Data))
	}
	return nil
}
