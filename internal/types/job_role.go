package types

import "github.com/go-playground/validator/v10"

// JobRole is a catalog entry: a title and the ordered skills a resume is scored against.
// Order of RequiredSkills drives output order of matched skills, not weighting.
type JobRole struct {
	Title          string   `json:"title" validate:"required"`
	RequiredSkills []string `json:"required_skills"`
}

// Validate validates the JobRole using the validator.
func (r *JobRole) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
