// Package parsing turns the loosely formatted "Label: value" text produced by the
// resume analyzer into a structured CandidateProfile.
package parsing

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Recognized field labels, in the priority order they are tested against each line
const (
	labelRole           = "role"
	labelSkills         = "skills"
	labelExperience     = "experience"
	labelEducation      = "education"
	labelCertifications = "certifications"
	labelProjects       = "projects"
)

// fieldLabels fixes the order in which labels are tested; a line belongs to the first label it starts with.
var fieldLabels = []string{
	labelRole,
	labelSkills,
	labelExperience,
	labelEducation,
	labelCertifications,
	labelProjects,
}

// ParseProfile builds a CandidateProfile from generated analysis text.
//
// It never fails: unrecognized lines are ignored and absent fields keep their
// zero value. When a label appears more than once, the last line wins.
func ParseProfile(rawText string) types.CandidateProfile {
	profile := types.CandidateProfile{
		Skills:   []string{},
		Projects: []string{},
	}

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		label := matchLabel(line)
		if label == "" {
			continue
		}

		value := fieldValue(line)
		switch label {
		case labelRole:
			profile.SuggestedRole = strings.TrimSpace(value)
		case labelSkills:
			profile.Skills = SplitList(value)
		case labelExperience:
			profile.Experience = strings.TrimSpace(value)
		case labelEducation:
			profile.Education = strings.TrimSpace(value)
		case labelCertifications:
			profile.Certifications = strings.TrimSpace(value)
		case labelProjects:
			profile.Projects = SplitList(value)
		}
	}

	return profile
}

// matchLabel returns the first field label the line starts with (case-insensitive), or "".
func matchLabel(line string) string {
	lower := strings.ToLower(line)
	for _, label := range fieldLabels {
		if strings.HasPrefix(lower, label) {
			return label
		}
	}
	return ""
}

// fieldValue returns everything after the first colon. A line without a colon is its own value.
func fieldValue(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return line[idx+1:]
	}
	return line
}
