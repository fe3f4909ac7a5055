package llm

import (
	"encoding/json"
	"fmt"
	"maps"
	"regexp"
	"strings"
)

var (
	reAmountOK  = regexp.MustCompile(`^\d+$`)
	reDateOK    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDigits    = regexp.MustCompile(`\d+`)
	reDateParts = regexp.MustCompile(`(\d{4})\D{0,3}(\d{1,2})\D{0,3}(\d{1,2})`)
)

var allowedKeys = map[string]struct{}{
	"vendor": {}, "bill_type": {}, "amount_due": {}, "due_date": {},
	"period_start": {}, "period_end": {}, "customer_number": {},
	"payment_account": {}, "confidence": {},
}

// SanitizeOptionalFields normalizes or removes optional fields that
// don't meet the stricter schema so the overall document can still
// validate. Models routinely echo separators ("1,234,500") or dotted
// dates ("2024.03.05") despite the prompt; we coerce those instead of
// failing the whole extraction. Only optionals are touched.
func SanitizeOptionalFields(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	// amount_due: numbers -> digit strings, strip separators/currency noise
	if v, ok := m["amount_due"]; ok {
		switch t := v.(type) {
		case float64:
			m["amount_due"] = fmt.Sprintf("%.0f", t)
			dropped = append(dropped, "amount_due(coerced)")
		case string:
			s := strings.TrimSpace(t)
			if !reAmountOK.MatchString(s) {
				digits := strings.Join(reDigits.FindAllString(s, -1), "")
				if digits != "" {
					m["amount_due"] = digits
					dropped = append(dropped, "amount_due(coerced)")
				} else {
					delete(m, "amount_due")
					dropped = append(dropped, "amount_due")
				}
			}
		default:
			delete(m, "amount_due")
			dropped = append(dropped, "amount_due")
		}
	}

	// date fields: reformat y/m/d variants, drop the unparseable
	for _, k := range []string{"due_date", "period_start", "period_end"} {
		v, ok := m[k].(string)
		if !ok {
			if _, present := m[k]; present {
				delete(m, k)
				dropped = append(dropped, k)
			}
			continue
		}
		s := strings.TrimSpace(v)
		if reDateOK.MatchString(s) {
			continue
		}
		if parts := reDateParts.FindStringSubmatch(s); parts != nil {
			m[k] = fmt.Sprintf("%s-%s-%s", parts[1], pad2(parts[2]), pad2(parts[3]))
			dropped = append(dropped, k+"(coerced)")
		} else {
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	// drop empty-string optionals
	for _, k := range []string{"bill_type", "customer_number", "payment_account"} {
		if v, ok := m[k].(string); ok && strings.TrimSpace(v) == "" {
			delete(m, k)
			dropped = append(dropped, k+"(empty)")
		}
	}

	// remove unknown keys (additionalProperties = false friendliness)
	for k := range maps.Clone(m) {
		if _, ok := allowedKeys[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, dropped, nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
