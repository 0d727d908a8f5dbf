package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/handhistory/cmd/handhistory/shared"
	"github.com/lox/handhistory/internal/archive"
	"github.com/lox/handhistory/internal/config"
	"github.com/lox/handhistory/internal/fileutil"
	"github.com/lox/handhistory/internal/parser"
	"github.com/lox/handhistory/internal/phh"
)

// ParseCmd parses every hand-history file inside a zip archive and writes
// the structured output to a timestamped file.
type ParseCmd struct {
	Archive string `arg:"" name:"archive" help:"Path to the zip archive of .txt hand-history files"`
	Config  string `kong:"default='handhistory.hcl',help='Path to HCL config file'"`
	Output  string `kong:"help='Output directory (overrides config)'"`
	Format  string `kong:"help='Output format: text or phh (overrides config)'"`
	Workers int    `kong:"help='Concurrent archive entries (overrides config)'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *ParseCmd) Run() error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Output != "" {
		cfg.Output.Dir = c.Output
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.Workers > 0 {
		cfg.Parse.Workers = c.Workers
	}
	if c.Debug {
		cfg.Parse.LogLevel = "debug"
	}
	if cfg.Output.Format != config.FormatText && cfg.Output.Format != config.FormatPHH {
		return fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}

	logger := shared.SetupLogger(cfg.Parse.LogLevel)
	ctx := shared.SetupSignalHandler(logger)

	runner := archive.NewRunner(logger, parser.New(logger), archive.Config{
		OutputDir: cfg.Output.Dir,
		Workers:   cfg.Parse.Workers,
	})

	if cfg.Output.Format == config.FormatPHH {
		hands, err := runner.ParseZip(ctx, c.Archive)
		if err != nil {
			return err
		}
		var b strings.Builder
		if err := phh.EncodeAll(&b, hands); err != nil {
			return err
		}
		outputPath := phhOutputPath(cfg.Output.Dir, c.Archive)
		if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
			return err
		}
		if err := fileutil.WriteFileAtomic(outputPath, []byte(b.String()), 0o644); err != nil {
			return err
		}
		logger.Info().Str("output", outputPath).Int("hands", len(hands)).Msg("archive parsed")
		return nil
	}

	_, err = runner.Run(ctx, c.Archive)
	return err
}

func phhOutputPath(dir, zipPath string) string {
	name := strings.TrimSuffix(filepath.Base(zipPath), filepath.Ext(zipPath))
	return filepath.Join(dir, name+".phhs")
}
