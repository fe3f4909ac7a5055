package utils

import "fmt"

// EnumValidator guards the string columns that mirror the pipeline
// vocabularies (bill type, status, stage) so a typo never reaches the
// database as a new state.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("%q is not an allowed value", s)
	}
}
