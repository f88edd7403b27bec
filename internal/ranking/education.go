package ranking

import "strings"

// educationTiers are checked in order; the first tier with a matching keyword sets the score.
var educationTiers = []struct {
	keywords []string
	score    float64
}{
	{[]string{"phd", "doctorate"}, 1.0},
	{[]string{"master", "mba"}, 0.75},
	{[]string{"bachelor"}, 0.5},
}

// computeEducationScore grades the highest degree mentioned in the education text.
// Returns 1.0 (doctorate), 0.75 (master's/MBA), 0.5 (bachelor's) or 0.
func computeEducationScore(education string) float64 {
	text := strings.ToLower(education)
	for _, tier := range educationTiers {
		if containsAny(text, tier.keywords) {
			return tier.score
		}
	}
	return 0.0
}
