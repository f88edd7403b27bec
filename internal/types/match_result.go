package types

// Skill match methods recorded in SkillEvidence
const (
	MatchMethodExact = "exact"
	MatchMethodFuzzy = "fuzzy"
)

// MatchResult is the score and matched-skill evidence for one (resume, job role) pair.
type MatchResult struct {
	Score         int             `json:"score"`
	MatchedSkills []string        `json:"matched_skills"`
	Breakdown     FactorBreakdown `json:"breakdown"`
	Evidence      []SkillEvidence `json:"evidence,omitempty"`
}

// FactorBreakdown holds the five factor values (each 0-1) that make up a score.
type FactorBreakdown struct {
	Skill         float64 `json:"skill"`
	Education     float64 `json:"education"`
	Certification float64 `json:"certification"`
	Experience    float64 `json:"experience"`
	Project       float64 `json:"project"`
}

// SkillEvidence records how a single required skill was matched.
type SkillEvidence struct {
	Skill  string  `json:"skill"`
	Method string  `json:"method"`
	Token  string  `json:"token,omitempty"` // Corpus token that satisfied a fuzzy match
	Ratio  float64 `json:"ratio,omitempty"` // Similarity ratio for fuzzy matches
}
