package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/intopost/internal/convert"
	"github.com/DjordjeVuckovic/intopost/internal/driver"
	"github.com/DjordjeVuckovic/intopost/internal/reader"
	"github.com/DjordjeVuckovic/intopost/internal/report"
	"github.com/DjordjeVuckovic/intopost/internal/suite"
	"github.com/DjordjeVuckovic/intopost/pkg/config/env"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/intopost/.env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	level, err := cfg.level()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return exitUsage
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	converter := convert.New(cfg.converterOptions()...)

	if cfg.SuitePath != "" {
		return runSuite(cfg, converter, stdout)
	}
	return runFile(cfg, converter, stdout)
}

func runFile(cfg cliConfig, converter *convert.Converter, stdout io.Writer) int {
	input, err := reader.OpenFile(cfg.InputPath)
	if err != nil {
		slog.Error("Failed to open input", "path", cfg.InputPath, "error", err)
		return exitFailure
	}
	defer input.Close()

	opts := []driver.Option{driver.WithOutput(stdout)}
	if cfg.FailFast {
		opts = append(opts, driver.WithFailFast())
	}

	summary, err := driver.New(converter, opts...).Run(input)
	if err != nil {
		slog.Error("Conversion stopped", "path", cfg.InputPath, "error", err)
		return exitFailure
	}
	if summary.Failed > 0 {
		slog.Warn("Some expressions could not be converted", "failed", summary.Failed, "total", summary.Total)
		return exitFailure
	}

	slog.Debug("Conversion finished", "total", summary.Total)
	return exitOK
}

func runSuite(cfg cliConfig, converter *convert.Converter, stdout io.Writer) int {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return exitFailure
	}

	rep := report.Generate(cfg.Containers, suite.Verify(s, converter))
	report.WriteTable(rep, stdout)

	if cfg.Output != "" {
		if err := report.SaveJSON(rep, cfg.Output); err != nil {
			slog.Error("Failed to write report", "path", cfg.Output, "error", err)
			return exitFailure
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if failed := rep.Failed(); failed > 0 {
		slog.Error("Suite verification failed", "suite", s.Name, "failed", failed)
		return exitFailure
	}
	return exitOK
}
