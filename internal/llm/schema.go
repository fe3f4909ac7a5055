package llm

// BuildBillJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as a structured-output
// constraint and also use it locally to validate the response.
func BuildBillJSONSchema(allowedBillTypes []string) map[string]any {
	props := map[string]any{
		"vendor":          map[string]any{"type": "string", "minLength": 1},
		"bill_type":       map[string]any{"type": "string"},
		"amount_due":      amountProp(),
		"due_date":        dateProp(),
		"period_start":    dateProp(),
		"period_end":      dateProp(),
		"customer_number": map[string]any{"type": "string", "minLength": 1},
		"payment_account": map[string]any{"type": "string", "minLength": 1},
		"confidence":      map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}
	required := []string{"vendor"}

	if len(allowedBillTypes) > 0 {
		props["bill_type"] = map[string]any{
			"type": "string",
			"enum": allowedBillTypes,
		}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func amountProp() map[string]any {
	// integer minor units as a digit string, no separators
	return map[string]any{
		"type":    "string",
		"pattern": `^\d+$`,
	}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}
