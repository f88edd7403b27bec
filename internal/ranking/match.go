package ranking

import (
	"math"
	"strings"

	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/jonathan/resume-screener/internal/types"
)

// FuzzyThreshold is the similarity ratio a corpus token must strictly exceed to fuzzy-match a skill.
const FuzzyThreshold = 0.80

// ScoreMatch scores a candidate profile against an ordered list of required skills.
//
// The score is floor(100 * weighted factor sum), clamped to [0,100]. MatchedSkills
// preserves the order of requiredSkills. Every profile field may be empty and
// requiredSkills may be empty; ScoreMatch never fails.
func ScoreMatch(profile types.CandidateProfile, requiredSkills []string) types.MatchResult {
	tokens := buildCorpus(&profile)
	corpus := strings.Join(tokens, " ")

	matched := make([]string, 0, len(requiredSkills))
	evidence := make([]types.SkillEvidence, 0, len(requiredSkills))
	for _, skill := range requiredSkills {
		ev, ok := matchSkill(skill, corpus, tokens)
		if !ok {
			continue
		}
		matched = append(matched, skill)
		evidence = append(evidence, ev)
	}

	breakdown := types.FactorBreakdown{
		Skill:         computeSkillScore(len(matched), len(requiredSkills)),
		Education:     computeEducationScore(profile.Education),
		Certification: computeCertificationScore(&profile),
		Experience:    computeExperienceScore(profile.Experience),
		Project:       computeProjectScore(&profile),
	}

	return types.MatchResult{
		Score:         compositeScore(DefaultWeights, breakdown, len(matched), len(requiredSkills)),
		MatchedSkills: matched,
		Breakdown:     breakdown,
		Evidence:      evidence,
	}
}

// ScoreRole scores a profile against a catalog role's required skills.
func ScoreRole(profile types.CandidateProfile, role types.JobRole) types.MatchResult {
	return ScoreMatch(profile, role.RequiredSkills)
}

// compositeScore blends the factors into an integer percentage.
// The skill share is computed from the raw counts so whole-number results stay exact.
func compositeScore(w Weights, b types.FactorBreakdown, matched, required int) int {
	points := 0.0
	if required > 0 {
		points += float64(matched*w.Skill) / float64(required)
	}
	points += b.Education * float64(w.Education)
	points += b.Certification * float64(w.Certification)
	points += b.Experience * float64(w.Experience)
	points += b.Project * float64(w.Project)

	score := int(math.Floor(points))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// buildCorpus collects the lower-cased matching tokens: skills, projects, then the
// whitespace-split words of certifications, education and experience.
func buildCorpus(profile *types.CandidateProfile) []string {
	tokens := make([]string, 0, len(profile.Skills)+len(profile.Projects)+16)
	for _, skill := range profile.Skills {
		tokens = append(tokens, strings.ToLower(skill))
	}
	for _, project := range profile.Projects {
		tokens = append(tokens, strings.ToLower(project))
	}
	for _, text := range []string{profile.Certifications, profile.Education, profile.Experience} {
		tokens = append(tokens, strings.Fields(strings.ToLower(text))...)
	}
	return tokens
}

// matchSkill tries an exact substring match against the joined corpus, then falls back
// to the first token whose similarity ratio exceeds FuzzyThreshold.
func matchSkill(skill, corpus string, tokens []string) (types.SkillEvidence, bool) {
	needle := strings.ToLower(skill)
	if strings.Contains(corpus, needle) {
		return types.SkillEvidence{Skill: skill, Method: types.MatchMethodExact}, true
	}

	for _, token := range tokens {
		ratio := similarity.Ratio(needle, token)
		if exceedsThreshold(ratio) {
			return types.SkillEvidence{
				Skill:  skill,
				Method: types.MatchMethodFuzzy,
				Token:  token,
				Ratio:  ratio,
			}, true
		}
	}

	return types.SkillEvidence{}, false
}

func exceedsThreshold(ratio float64) bool {
	return ratio > FuzzyThreshold
}
