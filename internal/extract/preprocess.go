package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// MagickPreprocessor normalizes bill photos with ImageMagick:
// auto-orient from EXIF, deskew, grayscale. Output is PNG so the
// downstream recognizers see one format regardless of the upload.
type MagickPreprocessor struct {
	runner Runner
	binary string
	logger *slog.Logger
}

func NewMagickPreprocessor(runner Runner, binary string, logger *slog.Logger) *MagickPreprocessor {
	if runner == nil {
		runner = NewExecRunner()
	}
	if binary == "" {
		binary = "magick"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MagickPreprocessor{runner: runner, binary: binary, logger: logger}
}

func (p *MagickPreprocessor) Normalize(ctx context.Context, image []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "billscan-preprocess-*")
	if err != nil {
		return nil, fmt.Errorf("tempdir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			p.logger.Warn("preprocess tempdir cleanup failed", "dir", dir, "error", rmErr)
		}
	}()

	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out.png")
	if err := os.WriteFile(in, image, 0o600); err != nil {
		return nil, fmt.Errorf("write input: %w", err)
	}

	args := []string{in, "-auto-orient", "-deskew", "40%", "-colorspace", "Gray", out}
	if _, stderr, err := p.runner.Run(ctx, p.binary, args...); err != nil {
		return nil, fmt.Errorf("magick: %w (stderr: %s)", err, truncate(string(stderr), 512))
	}

	normalized, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}
	p.logger.Debug("preprocess.ok", "in_bytes", len(image), "out_bytes", len(normalized))
	return normalized, nil
}
