package constants

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestArtifactKeyIsDeterministic(t *testing.T) {
	companyID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	documentID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	key := ArtifactKey(companyID, documentID, ArtifactScan)
	assert.Equal(t, fmt.Sprintf("%s/%s/scan", companyID, documentID), key)
	// Same inputs, same key: stages can overwrite their own artifact.
	assert.Equal(t, key, ArtifactKey(companyID, documentID, ArtifactScan))
}

func TestStageAtOrAfter(t *testing.T) {
	assert.True(t, StageAtOrAfter(StageValidate, StageTemplateOCR))
	assert.True(t, StageAtOrAfter(StageDone, StageDone))
	assert.False(t, StageAtOrAfter(StagePreprocess, StageGeneralOCR))
}

func TestCanonicalBillType(t *testing.T) {
	cases := []struct {
		in   string
		want BillType
		ok   bool
	}{
		{"ELECTRICITY", Electricity, true},
		{"electric", Electricity, true},
		{" power ", Electricity, true},
		{"city_gas", Gas, true},
		{"internet", Telecom, true},
		{"property_tax", Tax, true},
		{"management_fee", OtherBill, true},
		{"mystery", OtherBill, false},
		{"", OtherBill, false},
	}
	for _, tc := range cases {
		got, ok := CanonicalBillType(tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
	}
}
