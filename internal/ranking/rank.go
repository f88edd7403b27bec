package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// RankResults sorts screened resumes by descending score in place.
// Resumes with equal scores keep their submission order.
func RankResults(resumes []types.ScreenedResume) {
	sort.SliceStable(resumes, func(i, j int) bool {
		return resumes[i].Result.Score > resumes[j].Result.Score
	})
}

// Summary creates a brief explanation of a match result.
func Summary(result types.MatchResult) string {
	var parts []string

	// Skill match description
	skillOverlap := result.Breakdown.Skill
	if len(result.MatchedSkills) > 0 {
		skills := strings.Join(result.MatchedSkills, ", ")
		if skillOverlap >= 0.7 {
			parts = append(parts, fmt.Sprintf("Strong skill match (%s)", skills))
		} else if skillOverlap >= 0.4 {
			parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", skills))
		} else {
			parts = append(parts, fmt.Sprintf("Weak skill match (%s)", skills))
		}
	} else {
		parts = append(parts, "No skill matches")
	}

	fuzzy := 0
	for _, ev := range result.Evidence {
		if ev.Method == types.MatchMethodFuzzy {
			fuzzy++
		}
	}
	if fuzzy > 0 {
		parts = append(parts, fmt.Sprintf("%d approximate", fuzzy))
	}

	switch result.Breakdown.Education {
	case 1.0:
		parts = append(parts, "Doctorate")
	case 0.75:
		parts = append(parts, "Master's degree")
	case 0.5:
		parts = append(parts, "Bachelor's degree")
	}

	if result.Breakdown.Certification > 0 {
		parts = append(parts, "Relevant certification")
	}
	if result.Breakdown.Experience > 0 {
		parts = append(parts, "Relevant experience")
	}

	return strings.Join(parts, ". ")
}
