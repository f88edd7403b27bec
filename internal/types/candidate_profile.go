// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// CandidateProfile holds the fields parsed out of generated resume text.
// Every field may be empty; a profile is never rejected for missing data.
type CandidateProfile struct {
	SuggestedRole  string   `json:"suggested_role"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Education      string   `json:"education"`
	Certifications string   `json:"certifications"`
	Projects       []string `json:"projects"`
}

// HasCertifications reports whether the certifications field carries content.
// The literal "none" (any case) counts as empty.
func (p *CandidateProfile) HasCertifications() bool {
	certs := strings.ToLower(p.Certifications)
	return certs != "" && certs != "none"
}
