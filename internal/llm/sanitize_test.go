package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, doc string) (map[string]any, []string) {
	t.Helper()
	out, dropped, err := SanitizeOptionalFields([]byte(doc))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m, dropped
}

func TestSanitizeCoercesAmountSeparators(t *testing.T) {
	m, dropped := roundTrip(t, `{"vendor":"kepco","amount_due":"1,234,500원"}`)
	assert.Equal(t, "1234500", m["amount_due"])
	assert.Contains(t, dropped, "amount_due(coerced)")
}

func TestSanitizeCoercesNumericAmount(t *testing.T) {
	m, _ := roundTrip(t, `{"vendor":"kepco","amount_due":53200}`)
	assert.Equal(t, "53200", m["amount_due"])
}

func TestSanitizeReformatsDates(t *testing.T) {
	m, dropped := roundTrip(t, `{"vendor":"kepco","due_date":"2024.3.5","period_start":"2024년 2월 1일"}`)
	assert.Equal(t, "2024-03-05", m["due_date"])
	assert.Equal(t, "2024-02-01", m["period_start"])
	assert.Contains(t, dropped, "due_date(coerced)")
}

func TestSanitizeDropsUnparseableOptionals(t *testing.T) {
	m, dropped := roundTrip(t, `{"vendor":"kepco","due_date":"soon","bill_type":" "}`)
	assert.NotContains(t, m, "due_date")
	assert.NotContains(t, m, "bill_type")
	assert.Contains(t, dropped, "due_date")
	assert.Contains(t, dropped, "bill_type(empty)")
}

func TestSanitizeRemovesUnknownKeys(t *testing.T) {
	m, dropped := roundTrip(t, `{"vendor":"kepco","notes":"please pay","amount_due":"100"}`)
	assert.NotContains(t, m, "notes")
	assert.Contains(t, dropped, "notes(unknown)")
	assert.Equal(t, "kepco", m["vendor"])
}

func TestSanitizeLeavesCleanDocumentAlone(t *testing.T) {
	_, dropped := roundTrip(t, `{"vendor":"kepco","amount_due":"53200","due_date":"2024-03-05"}`)
	assert.Empty(t, dropped)
}

func TestSanitizedOutputPassesSchema(t *testing.T) {
	schema := BuildBillJSONSchema([]string{"ELECTRICITY", "WATER"})
	raw := []byte(`{"vendor":"한국전력공사","bill_type":"ELECTRICITY","amount_due":"1,234,500","due_date":"2024.03.05","junk":1}`)

	require.Error(t, ValidateJSONAgainstSchema(schema, raw))

	cleaned, _, err := SanitizeOptionalFields(raw)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(schema, cleaned))
}

func TestSchemaRequiresVendor(t *testing.T) {
	schema := BuildBillJSONSchema(nil)
	assert.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"amount_due":"100"}`)))
	assert.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"vendor":"kepco"}`)))
}
