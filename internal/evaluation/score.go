package evaluation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	keywordWeight = 70.0
	lengthWeight  = 30.0
	fullLengthAt  = 200.0
)

// ScoreAnswer grades raw answer text against an optional comma-separated
// keyword list. The score is the keyword match ratio scaled to 70 points plus
// a length bonus of up to 30 points (full at 200+ characters), rounded to two
// decimals. The returned notes explain both components.
func ScoreAnswer(answerText, expectedKeywords string) (float64, string) {
	if answerText == "" {
		return 0, "Empty answer"
	}

	var notes []string

	kwScore := 0.0
	if expectedKeywords != "" {
		expected := splitKeywords(expectedKeywords)
		if len(expected) > 0 {
			matched := 0
			ansLower := strings.ToLower(answerText)
			for _, k := range expected {
				if strings.Contains(ansLower, k) {
					matched++
				}
			}
			kwScore = float64(matched) / float64(len(expected)) * keywordWeight
			notes = append(notes, fmt.Sprintf("%d/%d keywords matched", matched, len(expected)))
		}
	}

	// Character count, not bytes: multi-byte answers must not over-earn.
	lengthBonus := math.Min(lengthWeight, float64(utf8.RuneCountInString(answerText))/fullLengthAt*lengthWeight)
	notes = append(notes, fmt.Sprintf("length_bonus=%v", round2(lengthBonus)))

	return round2(kwScore + lengthBonus), strings.Join(notes, "; ")
}

func splitKeywords(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if k := strings.ToLower(strings.TrimSpace(part)); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
