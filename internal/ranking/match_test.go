package ranking

import (
	"math/rand"
	"testing"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/similarity"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreMatch_BackendEngineerScenario(t *testing.T) {
	raw := "Role: Backend Engineer\n" +
		"Skills: python, sql, docker\n" +
		"Experience: Worked as backend engineer for 3 years\n" +
		"Education: Bachelor of Science\n" +
		"Certifications: None\n" +
		"Projects: inventory system, chat app"

	result := ScoreMatch(parsing.ParseProfile(raw), []string{"python", "sql", "kubernetes"})

	assert.Equal(t, []string{"python", "sql"}, result.MatchedSkills)
	assert.InDelta(t, 2.0/3.0, result.Breakdown.Skill, 1e-12)
	assert.Equal(t, 0.5, result.Breakdown.Education)
	assert.Equal(t, 0.0, result.Breakdown.Certification)
	assert.Equal(t, 1.0, result.Breakdown.Experience)
	assert.Equal(t, 1.0, result.Breakdown.Project)
	// floor((2/3)*50 + 0.5*20 + 0*10 + 1*15 + 1*5) = floor(63.33)
	assert.Equal(t, 63, result.Score)

	for _, ev := range result.Evidence {
		assert.Equal(t, types.MatchMethodExact, ev.Method)
	}
}

func TestScoreMatch_EmptyInputs(t *testing.T) {
	result := ScoreMatch(types.CandidateProfile{}, nil)

	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.MatchedSkills)
	assert.NotNil(t, result.MatchedSkills)
	assert.Equal(t, 0.0, result.Breakdown.Skill)
}

func TestScoreMatch_EmptyRequiredSkillsStillScoresOtherFactors(t *testing.T) {
	profile := types.CandidateProfile{
		Education: "MBA",
		Projects:  []string{"pricing engine"},
	}

	result := ScoreMatch(profile, []string{})

	assert.Equal(t, 0.0, result.Breakdown.Skill)
	// 0.75*20 + 5
	assert.Equal(t, 20, result.Score)
}

func TestScoreMatch_PerfectProfileScores100(t *testing.T) {
	profile := types.CandidateProfile{
		Skills:         []string{"python", "tensorflow"},
		Experience:     "Machine learning engineer",
		Education:      "PhD, Stanford",
		Certifications: "Google Professional ML Engineer",
		Projects:       []string{"image classifier"},
	}

	result := ScoreMatch(profile, []string{"python", "tensorflow"})

	assert.Equal(t, 100, result.Score)
}

func TestScoreMatch_WholePointBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		profile  types.CandidateProfile
		required []string
		want     int
	}{
		{
			name:     "half skills with bachelor and certification",
			profile:  types.CandidateProfile{Skills: []string{"python"}, Education: "Bachelor", Certifications: "AWS"},
			required: []string{"python", "rust"},
			want:     45,
		},
		{
			name:     "certification and experience only",
			profile:  types.CandidateProfile{Experience: "Data Analyst", Certifications: "Azure Fundamentals"},
			required: []string{"sql"},
			want:     25,
		},
		{
			name:     "one third of skills rounds down",
			profile:  types.CandidateProfile{Skills: []string{"sql"}},
			required: []string{"sql", "excel", "tableau"},
			want:     16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreMatch(tt.profile, tt.required).Score)
		})
	}
}

func TestScoreMatch_ExactMatchSearchesWholeCorpus(t *testing.T) {
	profile := types.CandidateProfile{
		Skills:     []string{"go"},
		Projects:   []string{"payment gateway"},
		Experience: "Built Kafka pipelines",
		Education:  "Bachelor of Computer Science",
	}

	result := ScoreMatch(profile, []string{"Kafka", "gateway", "computer science", "rust"})

	assert.Equal(t, []string{"Kafka", "gateway", "computer science"}, result.MatchedSkills)
}

func TestScoreMatch_FuzzyFallback(t *testing.T) {
	profile := types.CandidateProfile{Skills: []string{"kubernets", "pandas"}}

	result := ScoreMatch(profile, []string{"kubernetes"})

	require.Equal(t, []string{"kubernetes"}, result.MatchedSkills)
	require.Len(t, result.Evidence, 1)
	ev := result.Evidence[0]
	assert.Equal(t, types.MatchMethodFuzzy, ev.Method)
	assert.Equal(t, "kubernets", ev.Token)
	assert.InDelta(t, 18.0/19.0, ev.Ratio, 1e-12)
}

func TestScoreMatch_TensorflowAgainstTensorflow2(t *testing.T) {
	profile := types.CandidateProfile{Skills: []string{"tensorflow2"}}

	result := ScoreMatch(profile, []string{"tensorflow"})

	assert.Equal(t, []string{"tensorflow"}, result.MatchedSkills)
	assert.Greater(t, similarity.Ratio("tensorflow", "tensorflow2"), FuzzyThreshold)
}

func TestScoreMatch_FuzzyThresholdIsStrict(t *testing.T) {
	// ratio("abcde", "abcdx") is exactly 0.80 and must not match
	result := ScoreMatch(types.CandidateProfile{Skills: []string{"abcdx"}}, []string{"abcde"})
	assert.Empty(t, result.MatchedSkills)

	// ratio("abcdef", "abcdex") is 10/12 and must match
	result = ScoreMatch(types.CandidateProfile{Skills: []string{"abcdex"}}, []string{"abcdef"})
	assert.Equal(t, []string{"abcdef"}, result.MatchedSkills)
}

func TestExceedsThreshold(t *testing.T) {
	assert.False(t, exceedsThreshold(0.80))
	assert.True(t, exceedsThreshold(0.801))
	assert.False(t, exceedsThreshold(0.0))
	assert.True(t, exceedsThreshold(1.0))
}

func TestScoreMatch_FirstFuzzyTokenWins(t *testing.T) {
	profile := types.CandidateProfile{Skills: []string{"postgresq", "postgresql9"}}

	result := ScoreMatch(profile, []string{"postgresqx"})

	require.Len(t, result.Evidence, 1)
	assert.Equal(t, "postgresq", result.Evidence[0].Token)
}

func TestScoreMatch_PreservesRequiredOrderAndDuplicates(t *testing.T) {
	profile := types.CandidateProfile{Skills: []string{"sql", "python"}}

	result := ScoreMatch(profile, []string{"python", "java", "sql", "sql"})

	assert.Equal(t, []string{"python", "sql", "sql"}, result.MatchedSkills)
}

func TestScoreMatch_CaseInsensitiveButReturnsCatalogSpelling(t *testing.T) {
	profile := types.CandidateProfile{Skills: []string{"docker"}}

	result := ScoreMatch(profile, []string{"Docker"})

	assert.Equal(t, []string{"Docker"}, result.MatchedSkills)
}

func TestScoreMatch_NoneCertificationIsStillCorpus(t *testing.T) {
	// "none" is part of the matching corpus even though it scores 0 as a certification
	profile := types.CandidateProfile{Certifications: "None"}

	result := ScoreMatch(profile, []string{"none"})

	assert.Equal(t, []string{"none"}, result.MatchedSkills)
	assert.Equal(t, 0.0, result.Breakdown.Certification)
}

func TestScoreMatch_Properties(t *testing.T) {
	vocabulary := []string{
		"python", "pythn", "sql", "mysql", "docker", "kubernetes", "aws", "react",
		"reactjs", "data", "analysis", "", "machine learning", "golang", "go",
	}
	educations := []string{"", "PhD", "Master of Science", "Bachelor", "Diploma"}
	certs := []string{"", "None", "AWS", "Scrum"}
	experiences := []string{"", "software engineer", "cashier"}

	rng := rand.New(rand.NewSource(42))
	pick := func(n int) []string {
		out := make([]string, rng.Intn(n+1))
		for i := range out {
			out[i] = vocabulary[rng.Intn(len(vocabulary))]
		}
		return out
	}

	for i := 0; i < 500; i++ {
		profile := types.CandidateProfile{
			Skills:         pick(5),
			Projects:       pick(2),
			Education:      educations[rng.Intn(len(educations))],
			Certifications: certs[rng.Intn(len(certs))],
			Experience:     experiences[rng.Intn(len(experiences))],
		}
		required := pick(8)

		result := ScoreMatch(profile, required)

		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		assert.True(t, isSubsequence(result.MatchedSkills, required),
			"matched %v must be a subsequence of %v", result.MatchedSkills, required)
		assert.Equal(t, result, ScoreMatch(profile, required), "scoring must be deterministic")
	}
}

func TestScoreRole(t *testing.T) {
	role := types.JobRole{Title: "Data Analyst", RequiredSkills: []string{"excel", "tableau"}}
	profile := types.CandidateProfile{Skills: []string{"excel"}}

	result := ScoreRole(profile, role)

	assert.Equal(t, []string{"excel"}, result.MatchedSkills)
	assert.Equal(t, 25, result.Score)
}

// isSubsequence reports whether sub appears in seq in the same relative order.
func isSubsequence(sub, seq []string) bool {
	j := 0
	for _, s := range seq {
		if j < len(sub) && sub[j] == s {
			j++
		}
	}
	return j == len(sub)
}
