package confirm

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Human-submitted corrections arrive messy: thousands separators,
// currency symbols ("1,234,500원", "₩12,000"), regional date forms
// ("2024년 3월 5일", "2024.3.5", "2024-03-05"). These parsers pull the
// canonical value out or reject the input; they never guess.

var (
	reNumericKeep = regexp.MustCompile(`[^0-9.\-+]`)
	reSignedNum   = regexp.MustCompile(`^[-+]?\d+(\.\d+)?$`)
	reYMD         = regexp.MustCompile(`(\d{4})\D{0,3}?(\d{1,2})\D{0,3}?(\d{1,2})`)
)

// ParseAmount strips everything that is not a digit, sign or decimal
// point, parses the remainder as a number and rounds to the nearest
// integer minor unit. Invalid or non-finite input is an error, never
// stored as zero.
func ParseAmount(s string) (int64, error) {
	cleaned := reNumericKeep.ReplaceAllString(strings.TrimSpace(s), "")
	if cleaned == "" || !reSignedNum.MatchString(cleaned) {
		return 0, fmt.Errorf("no numeric amount in %q", s)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite amount %q", s)
	}
	return int64(math.Round(v)), nil
}

// ParseDate locates a year/month/day pattern with flexible separators
// and returns the canonical date. Month is checked 1-12 and day 1-31;
// full calendar validation is deliberately not attempted.
func ParseDate(s string) (time.Time, error) {
	parts := reYMD.FindStringSubmatch(strings.TrimSpace(s))
	if parts == nil {
		return time.Time{}, fmt.Errorf("no date pattern in %q", s)
	}
	year, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	day, _ := strconv.Atoi(parts[3])
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month out of range in %q", s)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day out of range in %q", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
