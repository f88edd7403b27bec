package types

import (
	"time"

	"github.com/google/uuid"
)

// ScreenedResume is the outcome of screening one resume file against a role.
type ScreenedResume struct {
	Name    string           `json:"name"`
	Path    string           `json:"path,omitempty"`
	RawText string           `json:"raw_text,omitempty"` // Generated analysis text the profile was parsed from
	Profile CandidateProfile `json:"profile"`
	Result  MatchResult      `json:"result"`
	Error   string           `json:"error,omitempty"` // Set when extraction or generation failed
}

// Failed reports whether the resume could not be analyzed.
func (r *ScreenedResume) Failed() bool {
	return r.Error != ""
}

// ScreeningReport is a batch of screened resumes for one role, sorted by descending score.
type ScreeningReport struct {
	RunID     uuid.UUID        `json:"run_id"`
	Role      string           `json:"role"`
	CreatedAt time.Time        `json:"created_at"`
	Resumes   []ScreenedResume `json:"resumes"`
}
