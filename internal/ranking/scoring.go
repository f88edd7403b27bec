// Package ranking scores candidate profiles against job roles and orders screened resumes.
package ranking

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// certificationKeywords are vendor and discipline terms that make a certification count
var certificationKeywords = []string{
	"aws", "azure", "google", "oracle", "pmp", "tensorflow", "ml", "data", "devops", "full stack",
}

// experienceKeywords are the job titles that mark relevant professional experience
var experienceKeywords = []string{"engineer", "developer", "scientist", "analyst"}

// computeSkillScore returns the fraction of required skills that were matched, or 0 when none are required.
func computeSkillScore(matched, required int) float64 {
	if required == 0 {
		return 0.0
	}
	return float64(matched) / float64(required)
}

// computeCertificationScore is binary: 1.0 if any certification keyword appears, else 0.
// Empty or "none" certifications always score 0.
func computeCertificationScore(profile *types.CandidateProfile) float64 {
	if !profile.HasCertifications() {
		return 0.0
	}
	if containsAny(strings.ToLower(profile.Certifications), certificationKeywords) {
		return 1.0
	}
	return 0.0
}

// computeExperienceScore is binary: 1.0 if the experience text names a relevant job title.
func computeExperienceScore(experience string) float64 {
	if containsAny(strings.ToLower(experience), experienceKeywords) {
		return 1.0
	}
	return 0.0
}

// computeProjectScore is binary: 1.0 if the profile lists any projects.
func computeProjectScore(profile *types.CandidateProfile) float64 {
	if len(profile.Projects) > 0 {
		return 1.0
	}
	return 0.0
}

// containsAny reports whether text contains any of the substrings.
func containsAny(text string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
