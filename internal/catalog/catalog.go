package catalog

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/types"
)

// Catalog is an ordered, read-only mapping from role title to JobRole.
// It is built once at startup and passed to the components that need it.
type Catalog struct {
	titles []string
	roles  map[string]types.JobRole
}

// New builds a catalog from roles, preserving their order.
// Every role must pass validation and titles must be unique.
func New(roles []types.JobRole) (*Catalog, error) {
	c := &Catalog{
		titles: make([]string, 0, len(roles)),
		roles:  make(map[string]types.JobRole, len(roles)),
	}
	for i := range roles {
		role := roles[i]
		if err := role.Validate(); err != nil {
			return nil, fmt.Errorf("invalid role at index %d: %w", i, err)
		}
		if _, exists := c.roles[role.Title]; exists {
			return nil, &DuplicateRoleError{Title: role.Title}
		}
		skills := make([]string, len(role.RequiredSkills))
		copy(skills, role.RequiredSkills)
		role.RequiredSkills = skills

		c.titles = append(c.titles, role.Title)
		c.roles[role.Title] = role
	}
	return c, nil
}

// Lookup returns the role with the exact title.
func (c *Catalog) Lookup(title string) (types.JobRole, bool) {
	role, ok := c.roles[title]
	if !ok {
		return types.JobRole{}, false
	}
	return cloneRole(role), true
}

// Titles returns role titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

// Roles returns every role in catalog order.
func (c *Catalog) Roles() []types.JobRole {
	out := make([]types.JobRole, 0, len(c.titles))
	for _, title := range c.titles {
		out = append(out, cloneRole(c.roles[title]))
	}
	return out
}

// Len returns the number of roles.
func (c *Catalog) Len() int {
	return len(c.titles)
}

func cloneRole(role types.JobRole) types.JobRole {
	skills := make([]string, len(role.RequiredSkills))
	copy(skills, role.RequiredSkills)
	role.RequiredSkills = skills
	return role
}
