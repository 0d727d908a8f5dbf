package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/handhistory/internal/fileutil"
	"github.com/lox/handhistory/internal/hand"
)

// Run parses the archive and writes the rendered hands to a timestamped
// file in the configured output directory, returning the output path.
func (r *Runner) Run(ctx context.Context, zipPath string) (string, error) {
	r.logger.Info().Str("archive", zipPath).Msg("start parsing")

	hands, err := r.ParseZip(ctx, zipPath)
	if err != nil {
		return "", err
	}

	outputPath, err := r.outputPath(zipPath)
	if err != nil {
		return "", err
	}
	if err := writeRendered(outputPath, hands); err != nil {
		return "", err
	}

	r.logger.Info().Str("output", outputPath).Int("hands", len(hands)).Msg("archive parsed")
	return outputPath, nil
}

// outputPath names the output file <yyyymmdd_hhmmss>_<archive>.txt under
// the output directory, creating the directory on demand.
func (r *Runner) outputPath(zipPath string) (string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	archiveName := strings.TrimSuffix(filepath.Base(zipPath), filepath.Ext(zipPath))
	filename := fmt.Sprintf("%s_%s.txt", r.cfg.Clock.Now().Format("20060102_150405"), archiveName)
	return filepath.Join(r.cfg.OutputDir, filename), nil
}

// writeRendered writes the canonical renders blank-line separated. The
// write is atomic so a crash mid-run never leaves a truncated output file.
func writeRendered(path string, hands []hand.History) error {
	rendered := make([]string, len(hands))
	for i, h := range hands {
		rendered[i] = h.Render()
	}
	data := []byte(strings.Join(rendered, "\n"))
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
