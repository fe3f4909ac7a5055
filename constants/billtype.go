package constants

import "strings"

// BillType classifies a utility bill.
type BillType string

const (
	Electricity BillType = "ELECTRICITY"
	Water       BillType = "WATER"
	Gas         BillType = "GAS"
	Telecom     BillType = "TELECOM"
	Tax         BillType = "TAX"
	OtherBill   BillType = "OTHER"
)

var allBillTypes = []BillType{
	Electricity,
	Water,
	Gas,
	Telecom,
	Tax,
	OtherBill,
}

func BillTypeStrings() []string {
	result := make([]string, len(allBillTypes))
	for i, t := range allBillTypes {
		result[i] = string(t)
	}
	return result
}

// CanonicalBillType maps free-form labels (extractor output, human
// input) onto the fixed enumeration. Unrecognized labels fall back to
// OTHER with ok=false.
func CanonicalBillType(input string) (BillType, bool) {
	if input == "" {
		return OtherBill, false
	}

	normalized := strings.ToUpper(strings.TrimSpace(input))

	synonyms := map[string]BillType{
		"ELECTRIC":       Electricity,
		"ELECTRICAL":     Electricity,
		"POWER":          Electricity,
		"WATERWORKS":     Water,
		"SEWAGE":         Water,
		"CITY_GAS":       Gas,
		"LNG":            Gas,
		"INTERNET":       Telecom,
		"MOBILE":         Telecom,
		"PHONE":          Telecom,
		"BROADBAND":      Telecom,
		"PROPERTY_TAX":   Tax,
		"LOCAL_TAX":      Tax,
		"NATIONAL_TAX":   Tax,
		"MISCELLANEOUS":  OtherBill,
		"MANAGEMENT_FEE": OtherBill,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allBillTypes {
		if normalized == string(t) {
			return t, true
		}
	}

	return OtherBill, false
}
