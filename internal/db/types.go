package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/types"
)

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

const (
	// DefaultListLimit is used when a caller passes a non-positive limit
	DefaultListLimit = 50
	// MaxListLimit caps how many rows one list call returns
	MaxListLimit = 500
)

// Run represents a screening batch record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	RoleTitle   string     `json:"role_title"`
	FileCount   int        `json:"file_count"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ScreeningRecord is one stored resume result
type ScreeningRecord struct {
	ID            int64                  `json:"id"`
	RunID         uuid.UUID              `json:"run_id"`
	File          string                 `json:"file"`
	RoleTitle     string                 `json:"role_title"`
	Profile       types.CandidateProfile `json:"profile"`
	Score         int                    `json:"score"`
	MatchedSkills []string               `json:"matched_skills"`
	Breakdown     types.FactorBreakdown  `json:"breakdown"`
	RawText       string                 `json:"raw_text,omitempty"`
	Error         string                 `json:"error,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// RecordFromResume converts a screened resume into its stored form.
// Nil slices become empty so the NOT NULL array columns accept them.
func RecordFromResume(runID uuid.UUID, roleTitle string, resume *types.ScreenedResume) ScreeningRecord {
	profile := resume.Profile
	profile.Skills = nonNil(profile.Skills)
	profile.Projects = nonNil(profile.Projects)

	file := resume.Name
	if file == "" {
		file = resume.Path
	}

	return ScreeningRecord{
		RunID:         runID,
		File:          file,
		RoleTitle:     roleTitle,
		Profile:       profile,
		Score:         resume.Result.Score,
		MatchedSkills: nonNil(resume.Result.MatchedSkills),
		Breakdown:     resume.Result.Breakdown,
		RawText:       resume.RawText,
		Error:         resume.Error,
	}
}

// ClampLimit bounds a list limit to [1, MaxListLimit], substituting DefaultListLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
