package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// TesseractRecognizer runs general OCR over the scan artifact.
type TesseractRecognizer struct {
	runner      Runner
	binary      string
	lang        string
	tessdataDir string
	logger      *slog.Logger
}

type TesseractConfig struct {
	Binary      string // default "tesseract"
	Lang        string // default "kor+eng"
	TessdataDir string
}

func NewTesseractRecognizer(runner Runner, cfg TesseractConfig, logger *slog.Logger) *TesseractRecognizer {
	if runner == nil {
		runner = NewExecRunner()
	}
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "kor+eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TesseractRecognizer{
		runner:      runner,
		binary:      cfg.Binary,
		lang:        cfg.Lang,
		tessdataDir: cfg.TessdataDir,
		logger:      logger,
	}
}

func (r *TesseractRecognizer) Recognize(ctx context.Context, image []byte) (RecognitionResult, error) {
	dir, err := os.MkdirTemp("", "billscan-ocr-*")
	if err != nil {
		return RecognitionResult{}, fmt.Errorf("tempdir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			r.logger.Warn("ocr tempdir cleanup failed", "dir", dir, "error", rmErr)
		}
	}()

	in := filepath.Join(dir, "scan.png")
	if err := os.WriteFile(in, image, 0o600); err != nil {
		return RecognitionResult{}, fmt.Errorf("write input: %w", err)
	}

	// tesseract <file> stdout -l <lang>
	args := []string{in, "stdout", "-l", r.lang}
	if r.tessdataDir != "" {
		args = append(args, "--tessdata-dir", r.tessdataDir)
	}
	out, errb, err := r.runner.Run(ctx, r.binary, args...)
	if err != nil {
		return RecognitionResult{Warnings: []string{string(errb)}}, fmt.Errorf("tesseract: %w", err)
	}

	text := NormalizeText(string(out))
	res := RecognitionResult{
		Text:       text,
		Confidence: heuristicConfidence(text),
		Language:   r.lang,
	}
	r.logger.Debug("ocr.ok", "text_bytes", len(text), "confidence", res.Confidence)
	return res, nil
}
