// Package sentiment scores free text with a fixed word-polarity lexicon.
package sentiment

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

const (
	VeryNegative = "Very Negative"
	Negative     = "Negative"
	Neutral      = "Neutral"
	Positive     = "Positive"
	VeryPositive = "Very Positive"

	// NeutralScore is returned for empty or unscorable text.
	NeutralScore = 0.5
)

// Result is a normalized polarity in [0,1] with its label.
type Result struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Label buckets a normalized score.
func Label(score float64) string {
	switch {
	case score < 0.30:
		return VeryNegative
	case score < 0.45:
		return Negative
	case score < 0.55:
		return Neutral
	case score < 0.70:
		return Positive
	default:
		return VeryPositive
	}
}

// Score returns the normalized polarity of text. It never panics.
func Score(text string) (res Result) {
	defer func() {
		if recover() != nil {
			res = Result{Score: NeutralScore, Label: Neutral}
		}
	}()

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Result{Score: NeutralScore, Label: Neutral}
	}

	raw := 0
	for _, tok := range tokens {
		raw += lexicon[tok]
	}
	score := clamp((float64(raw) + 5) / 10)
	return Result{Score: score, Label: Label(score)}
}

// Tokenize splits text on Unicode word boundaries and returns lowercased
// tokens that contain at least one letter or digit.
func Tokenize(text string) []string {
	var out []string
	iter := words.FromString(text)
	for iter.Next() {
		tok := iter.Value()
		if !hasWordRune(tok) {
			continue
		}
		out = append(out, strings.ToLower(tok))
	}
	return out
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
