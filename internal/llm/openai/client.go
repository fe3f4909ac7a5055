package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paydocs/billscan/internal/common"
	"github.com/paydocs/billscan/internal/extract"
	"github.com/paydocs/billscan/internal/llm"
)

// Normalize implements llm.FieldExtractor using text-only
// chat/completions with a structured-output contract.
func (c *Client) Normalize(ctx context.Context, req llm.NormalizeRequest) (llm.NormalizeResult, error) {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	c.logger.Info("llm.normalize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.RawText),
		"vendor_hint", req.VendorHint,
		"prep_confidence", req.PrepConfidence,
		"allowed_bill_types", len(req.AllowedBillTypes),
	)

	schema := llm.BuildBillJSONSchema(req.AllowedBillTypes)
	sys := buildSystemPrompt(req)
	user := buildUserPrompt(req.RawText, req.VendorHint)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("llm.normalize.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.NormalizeResult{}, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.normalize.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.NormalizeResult{Raw: raw}, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.normalize.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.NormalizeResult{Raw: raw}, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	rawContent := []byte(content)
	var sanitized []string

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if !c.cfg.LenientOptional {
			c.logger.Error("llm.normalize.schema_validation_failed",
				"req_id", rid, "error", err, "content", string(rawContent),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.NormalizeResult{Raw: rawContent}, fmt.Errorf("%w: %v", llm.ErrSchemaInvalid, err)
		}
		// Try a lenient sanitize: drop/normalize optional offenders and re-validate.
		cleaned, dropped, sErr := llm.SanitizeOptionalFields(rawContent)
		if sErr != nil {
			c.logger.Error("llm.normalize.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.NormalizeResult{Raw: rawContent}, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("llm.normalize.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(rawContent),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.NormalizeResult{Raw: rawContent}, fmt.Errorf("%w: %v", llm.ErrSchemaInvalid, vErr)
		}
		c.logger.Warn("llm.normalize.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
		sanitized = dropped
	}

	var fields extract.BillFields
	if err := json.Unmarshal(rawContent, &fields); err != nil {
		c.logger.Error("llm.normalize.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.NormalizeResult{Raw: rawContent}, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.logger.Info("llm.normalize.ok",
		"req_id", rid,
		"vendor", fields.Vendor,
		"bill_type", fields.BillType,
		"amount_due", fields.AmountDue,
		"due_date", fields.DueDate,
		"sanitized", len(sanitized),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.NormalizeResult{Fields: fields, Raw: rawContent, Sanitized: sanitized}, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("openai response body close error", "error", cerr)
		}
	}()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func buildSystemPrompt(req llm.NormalizeRequest) string {
	var typeLine string
	if len(req.AllowedBillTypes) > 0 {
		typeLine = "Allowed bill types (enum): " + strings.Join(req.AllowedBillTypes, ", ") + ". "
	} else {
		typeLine = "bill_type must be a short, sensible label if present. "
	}
	currency := req.DefaultCurrency
	if currency == "" {
		currency = "KRW"
	}

	parts := []string{
		"You are a utility-bill parser. Return ONLY JSON that matches the JSON Schema provided.",
		"The text is OCR output from a photographed or scanned bill and may contain recognition noise.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"amount_due is the total amount payable, as an integer amount in the minor unit of " + currency + ", digits only, no separators or currency symbols.",
		typeLine,
		"customer_number is the account/customer identifier printed on the bill.",
		"payment_account is the bank or giro account to pay into, if printed.",
		"period_start and period_end bound the billing period, if printed.",
		"Set 'confidence' to your own 0..1 estimate of extraction reliability.",
		"Never output null. If a field is not present, omit it.",
	}
	if req.VendorHint != "" {
		parts = append(parts, "A template matcher suggested the vendor may be: "+req.VendorHint+".")
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(rawText, vendorHint string) string {
	var b strings.Builder
	if vendorHint != "" {
		b.WriteString("Vendor hint: ")
		b.WriteString(vendorHint)
		b.WriteString("\n")
	}
	b.WriteString("\nOCR text (first ~4k chars):\n")
	if len(rawText) > 4000 {
		b.WriteString(rawText[:4000])
	} else {
		b.WriteString(rawText)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
