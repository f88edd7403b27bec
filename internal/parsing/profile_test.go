package parsing

import (
	"testing"

	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
)

const backendEngineerText = "Role: Backend Engineer\n" +
	"Skills: python, sql, docker\n" +
	"Experience: Worked as backend engineer for 3 years\n" +
	"Education: Bachelor of Science\n" +
	"Certifications: None\n" +
	"Projects: inventory system, chat app"

func TestParseProfile_AllFields(t *testing.T) {
	profile := ParseProfile(backendEngineerText)

	assert.Equal(t, types.CandidateProfile{
		SuggestedRole:  "Backend Engineer",
		Skills:         []string{"python", "sql", "docker"},
		Experience:     "Worked as backend engineer for 3 years",
		Education:      "Bachelor of Science",
		Certifications: "None",
		Projects:       []string{"inventory system", "chat app"},
	}, profile)
}

func TestParseProfile_EmptyInput(t *testing.T) {
	profile := ParseProfile("")

	assert.Empty(t, profile.SuggestedRole)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Experience)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Certifications)
	assert.Empty(t, profile.Projects)
}

func TestParseProfile_LastOccurrenceWins(t *testing.T) {
	raw := "Role: Data Analyst\nSkills: excel\nRole: Data Scientist\nSkills: python, r"

	profile := ParseProfile(raw)

	assert.Equal(t, "Data Scientist", profile.SuggestedRole)
	assert.Equal(t, []string{"python", "r"}, profile.Skills)
}

func TestParseProfile_CaseInsensitiveLabelsAndIndentation(t *testing.T) {
	raw := "   ROLE: QA Engineer  \r\n\tskills:  Selenium ,  JIRA\r\n"

	profile := ParseProfile(raw)

	assert.Equal(t, "QA Engineer", profile.SuggestedRole)
	assert.Equal(t, []string{"selenium", "jira"}, profile.Skills)
}

func TestParseProfile_ValueAfterFirstColonOnly(t *testing.T) {
	raw := "Experience: Lead: Platform team: 2019-2023"

	profile := ParseProfile(raw)

	assert.Equal(t, "Lead: Platform team: 2019-2023", profile.Experience)
}

func TestParseProfile_LabelWithoutColonUsesWholeLine(t *testing.T) {
	profile := ParseProfile("Education Bachelor of Arts")

	assert.Equal(t, "Education Bachelor of Arts", profile.Education)
}

func TestParseProfile_PriorityOrder(t *testing.T) {
	// "rolex" starts with "role", so it is treated as a role line even though it is junk
	profile := ParseProfile("Rolex collector: yes")
	assert.Equal(t, "yes", profile.SuggestedRole)

	// "Experienced" starts with "experience"
	profile = ParseProfile("Experienced engineer")
	assert.Equal(t, "Experienced engineer", profile.Experience)
}

func TestParseProfile_UnrecognizedLinesIgnored(t *testing.T) {
	raw := "Here is the analysis you asked for:\n\nSummary: strong candidate\nSkills: go"

	profile := ParseProfile(raw)

	assert.Equal(t, []string{"go"}, profile.Skills)
	assert.Empty(t, profile.SuggestedRole)
}

func TestParseProfile_ErrorTextDegradesToEmptyProfile(t *testing.T) {
	profile := ParseProfile("connection refused while calling model")

	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Projects)
	assert.Empty(t, profile.SuggestedRole)
}

func TestParseProfile_Idempotent(t *testing.T) {
	inputs := []string{
		backendEngineerText,
		"",
		"Skills: a,, b,\nProjects:",
		"Role: x\nRole: y",
	}
	for _, raw := range inputs {
		assert.Equal(t, ParseProfile(raw), ParseProfile(raw))
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"simple", "Go, SQL", []string{"go", "sql"}},
		{"trailing comma dropped", "go, sql,", []string{"go", "sql"}},
		{"trailing comma with spaces dropped", "go, sql,  ", []string{"go", "sql"}},
		{"inner empty kept", "go,, sql", []string{"go", "", "sql"}},
		{"only last empty piece dropped", "go,,", []string{"go", ""}},
		{"empty value", "", []string{""}},
		{"single item", " Kubernetes ", []string{"kubernetes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}

func TestNormalizeItem(t *testing.T) {
	assert.Equal(t, "machine learning", NormalizeItem("  Machine Learning "))
	assert.Equal(t, "", NormalizeItem("   "))
}
