package confirm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1,234,500원", 1234500},
		{"₩12,000", 12000},
		{"12000", 12000},
		{"  53,200 KRW ", 53200},
		{"-5000", -5000},
		{"+300", 300},
		{"12000.4", 12000},
		{"12000.5", 12001},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseAmountRejectsNonNumeric(t *testing.T) {
	for _, in := range []string{"", "TBD", "미정", "원", "--", "1.2.3"} {
		_, err := ParseAmount(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024년 3월 5일", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"2024.3.5", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"2024/12/31", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"납기일: 2025년 1월 15일까지", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.True(t, tc.want.Equal(got), "input %q: got %s", tc.in, got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "TBD", "다음주중", "2024년 13월 1일", "2024-02-45"} {
		_, err := ParseDate(in)
		assert.Error(t, err, "input %q", in)
	}
}
