// Package schemas holds the JSON Schemas for the screener's output documents.
package schemas

import "embed"

// File names of the bundled schemas.
const (
	MatchResult      = "match_result.schema.json"
	CandidateProfile = "candidate_profile.schema.json"
	ScreeningReport  = "screening_report.schema.json"
)

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
