package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTextCollapsesNoise(t *testing.T) {
	in := "전기요금청구서\r\n\r\n\r\n\r\n고객번호:\t123-456\n----------\n합계   53,200원   \n"
	out := NormalizeText(in)
	assert.Equal(t, "전기요금청구서\n\n고객번호: 123-456\n\n합계 53,200원", out)
}

func TestNormalizeTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
}

func TestHeuristicConfidenceRewardsBillMarkers(t *testing.T) {
	bare := heuristicConfidence("asdf qwer")
	billish := heuristicConfidence("납기일 2024.03.05 까지 합계 53,200원")
	assert.Greater(t, billish, bare)
	assert.GreaterOrEqual(t, bare, float32(0.2))
	assert.LessOrEqual(t, billish, float32(1.0))
}

func TestHeuristicConfidenceLongTextBonus(t *testing.T) {
	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	assert.Greater(t, heuristicConfidence(string(long)), heuristicConfidence("a"))
}
