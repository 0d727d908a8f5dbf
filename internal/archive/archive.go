// Package archive feeds exported hand-history files through the parser. A
// poker room export is a zip archive of .txt files, each holding thousands
// of hands; this layer walks the archive, decodes entries to text and hands
// the blobs to parser.ParseBatch. All parsing logic stays in the parser;
// this package is I/O glue plus error reporting.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handhistory/internal/hand"
	"github.com/lox/handhistory/internal/parser"
)

// Clock abstracts time for deterministic testing of output naming.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using time.Now.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Config configures a Runner.
type Config struct {
	// OutputDir receives the rendered output file, created on demand.
	OutputDir string
	// Workers bounds how many archive entries parse concurrently.
	Workers int
	// Clock is used for output file naming.
	Clock Clock
}

// Runner parses hand-history archives and writes the rendered results.
type Runner struct {
	cfg    Config
	parser *parser.Parser
	logger zerolog.Logger
}

// NewRunner creates a runner around the given parser.
func NewRunner(logger zerolog.Logger, p *parser.Parser, cfg Config) *Runner {
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join("resources", "parsed")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Clock == nil {
		cfg.Clock = realClock{}
	}
	return &Runner{cfg: cfg, parser: p, logger: logger}
}

// ParseZip parses every .txt entry of the archive and returns the surviving
// hands in entry order. Entry and fragment failures are logged with enough
// context to find the offending hand, and never abort the remaining work.
// Hands within an entry have no data dependency, so entries fan out across
// a bounded worker group.
func (r *Runner) ParseZip(ctx context.Context, path string) ([]hand.History, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer archive.Close()

	var entries []*zip.File
	for _, entry := range archive.File {
		if strings.EqualFold(filepath.Ext(entry.Name), ".txt") {
			entries = append(entries, entry)
		}
	}

	perEntry := make([][]hand.History, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hands, err := r.parseEntry(entry)
			if err != nil {
				// Keep going; sibling entries are independent.
				r.logger.Error().Err(err).Str("entry", entry.Name).Msg("skipping unreadable entry")
				return nil
			}
			perEntry[i] = hands
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var hands []hand.History
	for _, parsed := range perEntry {
		hands = append(hands, parsed...)
	}
	return hands, nil
}

func (r *Runner) parseEntry(entry *zip.File) ([]hand.History, error) {
	r.logger.Info().Str("entry", entry.Name).Msg("parsing entry")

	f, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read entry: %w", err)
	}

	results := r.parser.ParseBatch(string(content))
	hands := make([]hand.History, 0, len(results))
	for _, result := range results {
		if result.Err != nil {
			r.logger.Error().Err(result.Err).
				Str("entry", entry.Name).
				Int("hand_index", result.Index).
				Msg("skipping unparseable hand")
			continue
		}
		hands = append(hands, result.Hand)
	}
	return hands, nil
}
