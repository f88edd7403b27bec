// Package catalog holds the read-only set of job roles that resumes are screened against.
package catalog

import "fmt"

// LoadError represents a failure reading or decoding a role catalog source
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// DuplicateRoleError is returned when two roles share a title
type DuplicateRoleError struct {
	Title string
}

func (e *DuplicateRoleError) Error() string {
	return fmt.Sprintf("duplicate role title: %q", e.Title)
}
