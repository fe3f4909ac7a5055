package extract

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reBoxNoise   = regexp.MustCompile(`(?m)^\s*[_\-|]{3,}\s*$`)
)

// NormalizeText collapses noisy whitespace and strips common scan
// artifacts (table rules, box-drawing debris). Conservative: keeps
// line breaks, collapses >2 newlines into a single blank line.
func NormalizeText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reBoxNoise.ReplaceAllString(s, "")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var (
	reDate   = regexp.MustCompile(`20\d{2}\s*[.\-/년]\s*\d{1,2}`)
	reCurr   = regexp.MustCompile(`원|₩|\bkrw\b|\busd\b|[$]`)
	reAmount = regexp.MustCompile(`\d{1,3}(,\d{3})+|\d{4,}`)
)

// heuristicConfidence estimates recognition quality from decoded text
// characteristics. Bills reliably carry a date, a currency marker and
// at least one large amount; each sighting adds to the base score.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2)
	if reDate.MatchString(txtL) {
		score += 0.2
	}
	if reCurr.MatchString(txtL) {
		score += 0.15
	}
	if reAmount.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
