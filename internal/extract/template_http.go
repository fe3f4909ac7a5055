package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HTTPTemplateMatcher calls a form-recognition service that holds the
// known vendor templates and extracts fields from fixed positions on a
// match. A confident no-match is a normal response, not an error.
type HTTPTemplateMatcher struct {
	cfg    TemplateMatcherConfig
	http   *http.Client
	logger *slog.Logger
}

type TemplateMatcherConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration // http client timeout
	MinScore float32       // below this a reported match is treated as no-match
}

func NewHTTPTemplateMatcher(cfg TemplateMatcherConfig, logger *slog.Logger) *HTTPTemplateMatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = 0.8
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPTemplateMatcher{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type templateMatchResponse struct {
	Matched    bool       `json:"matched"`
	TemplateID string     `json:"template_id"`
	Score      float32    `json:"score"`
	Fields     BillFields `json:"fields"`
}

func (m *HTTPTemplateMatcher) Match(ctx context.Context, image []byte) (TemplateMatch, error) {
	rid := uuid.New().String()
	start := time.Now()

	body := map[string]any{
		"image":    base64.StdEncoding.EncodeToString(image),
		"encoding": "base64",
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return TemplateMatch{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+"/v1/match", bytes.NewReader(bs))
	if err != nil {
		return TemplateMatch{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.http.Do(req)
	if err != nil {
		m.logger.Error("template.match.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return TemplateMatch{}, fmt.Errorf("template service: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			m.logger.Warn("template response body close error", "error", cerr)
		}
	}()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return TemplateMatch{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return TemplateMatch{}, fmt.Errorf("template service status %d: %s", resp.StatusCode, truncate(buf.String(), 512))
	}

	var out templateMatchResponse
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		return TemplateMatch{}, fmt.Errorf("decode response: %w", err)
	}

	matched := out.Matched && out.Score >= m.cfg.MinScore
	m.logger.Info("template.match.done",
		"req_id", rid,
		"matched", matched,
		"template_id", out.TemplateID,
		"score", out.Score,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return TemplateMatch{
		Matched:    matched,
		TemplateID: out.TemplateID,
		Score:      out.Score,
		Fields:     out.Fields,
	}, nil
}
