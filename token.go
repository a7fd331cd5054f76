package decant

import (
	"math"
	"strings"
)

// CountWords counts non-empty whitespace-separated tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EstimateTokens approximates the language-model token count of text as the
// rounded average of a character-based estimate (1 token per 4 characters)
// and a word-based estimate (1.33 tokens per word). Averaging the two
// smooths over estimator bias across languages.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	byChars := math.Ceil(float64(len(text)) / 4)
	byWords := math.Ceil(float64(CountWords(text)) * 1.33)
	return int(math.Round((byChars + byWords) / 2))
}
