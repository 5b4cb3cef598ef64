package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/intopost/internal/convert"
)

const (
	containersLinked = "linked"
	containersArray  = "array"
)

var errUsage = errors.New("usage error")

type cliConfig struct {
	InputPath  string
	SuitePath  string
	Output     string
	Containers string
	LogLevel   string
	FailFast   bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("intopost", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: intopost [flags] <filename>")
		fs.PrintDefaults()
	}

	defaultLevel := os.Getenv("LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}

	fs.BoolVar(&cfg.FailFast, "fail-fast", false, "Stop at the first malformed expression")
	fs.StringVar(&cfg.Containers, "containers", containersLinked, "Stack and queue implementation: linked or array")
	fs.StringVar(&cfg.SuitePath, "suite", "", "Path to a verification suite YAML; replaces the input file")
	fs.StringVar(&cfg.Output, "output", "", "Write the suite report as JSON to this path")
	fs.StringVar(&cfg.LogLevel, "log-level", defaultLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.SuitePath == "" {
		if fs.NArg() != 1 {
			fs.Usage()
			return cfg, errUsage
		}
		cfg.InputPath = fs.Arg(0)
	}

	if cfg.Containers != containersLinked && cfg.Containers != containersArray {
		fmt.Fprintf(stderr, "invalid -containers %q: want %s or %s\n", cfg.Containers, containersLinked, containersArray)
		return cfg, errUsage
	}

	return cfg, nil
}

func (c cliConfig) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

func (c cliConfig) converterOptions() []convert.Option {
	if c.Containers == containersArray {
		return []convert.Option{convert.WithArrayContainers()}
	}
	return nil
}
