package intelligence

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shelfwise/shelfwise/internal/contract"
)

var numericToken = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ValidateNumericClaims checks that every number in a generated summary is
// traceable to one of the supplied facts, allowing rounded and percentage
// renderings of a fact value. Phrases in ignore (location names, product
// names) are stripped first so digits inside them do not count as claims.
// Returns an error listing all untraceable numbers; a failing summary is
// discarded in favor of the template answer.
func ValidateNumericClaims(summary string, facts []contract.Fact, ignore []string) error {
	text := stripPhrases(summary, ignore)

	var invalid []string
	for _, token := range numericToken.FindAllString(text, -1) {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		if !claimSupported(value, facts) {
			invalid = append(invalid, token)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("numeric claims not backed by facts: %s", strings.Join(invalid, ", "))
	}
	return nil
}

func stripPhrases(s string, phrases []string) string {
	lower := strings.ToLower(s)
	for _, phrase := range phrases {
		p := strings.ToLower(phrase)
		if p == "" {
			continue
		}
		for {
			i := strings.Index(lower, p)
			if i == -1 {
				break
			}
			lower = lower[:i] + lower[i+len(p):]
		}
	}
	return lower
}

func claimSupported(value float64, facts []contract.Fact) bool {
	for _, f := range facts {
		for _, candidate := range renderings(f.Value) {
			if math.Abs(value-candidate) < 0.005 {
				return true
			}
		}
	}
	return false
}

// renderings lists the numeric forms a fact value may legitimately take in
// prose: raw, rounded, and as a percentage.
func renderings(v float64) []float64 {
	return []float64{
		v,
		math.Round(v),
		math.Round(v*10) / 10,
		math.Round(v*100) / 100,
		v * 100,
		math.Round(v * 100),
		math.Round(v*1000) / 10,
	}
}

// formatValue renders a fact value with at most two decimals, trimming
// trailing zeros so costs read as "1200" and ratios as "1.85".
func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
