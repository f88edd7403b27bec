package catalog

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New([]types.JobRole{
		{Title: "Data Analyst", RequiredSkills: []string{"sql", "excel"}},
		{Title: "Backend Engineer", RequiredSkills: []string{"go"}},
		{Title: "Designer"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"Data Analyst", "Backend Engineer", "Designer"}, c.Titles())

	role, ok := c.Lookup("Backend Engineer")
	require.True(t, ok)
	assert.Equal(t, []string{"go"}, role.RequiredSkills)

	_, ok = c.Lookup("backend engineer")
	assert.False(t, ok, "lookup is exact")
}

func TestNew_RejectsDuplicateTitles(t *testing.T) {
	_, err := New([]types.JobRole{{Title: "A"}, {Title: "A"}})

	var dupErr *DuplicateRoleError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "A", dupErr.Title)
}

func TestNew_RejectsEmptyTitle(t *testing.T) {
	_, err := New([]types.JobRole{{Title: ""}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 0")
}

func TestCatalog_IsReadOnly(t *testing.T) {
	input := []types.JobRole{{Title: "A", RequiredSkills: []string{"x"}}}
	c, err := New(input)
	require.NoError(t, err)

	input[0].RequiredSkills[0] = "mutated"
	role, _ := c.Lookup("A")
	assert.Equal(t, "x", role.RequiredSkills[0])

	role.RequiredSkills[0] = "mutated"
	again, _ := c.Lookup("A")
	assert.Equal(t, "x", again.RequiredSkills[0])

	titles := c.Titles()
	titles[0] = "B"
	assert.Equal(t, []string{"A"}, c.Titles())

	roles := c.Roles()
	roles[0].RequiredSkills[0] = "mutated"
	assert.Equal(t, "x", c.Roles()[0].RequiredSkills[0])
}

func TestLoadError(t *testing.T) {
	cause := assert.AnError
	err := &LoadError{Message: "failed to read row", Cause: cause}

	assert.Equal(t, "catalog load error: failed to read row: "+cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "catalog load error: empty", (&LoadError{Message: "empty"}).Error())
}
