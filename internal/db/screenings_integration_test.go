//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestScreeningLifecycle_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	runID := uuid.New()
	role := "Integration Role " + runID.String()
	require.NoError(t, db.CreateRun(ctx, runID, role, 2))
	defer func() {
		_ = db.DeleteRun(ctx, runID)
	}()

	low := &types.ScreenedResume{Name: "low.txt", Result: types.MatchResult{Score: 20, MatchedSkills: []string{"go"}}}
	high := &types.ScreenedResume{
		Name:    "high.txt",
		Profile: types.CandidateProfile{Skills: []string{"go", "sql"}, Education: "MSc"},
		Result: types.MatchResult{
			Score:         80,
			MatchedSkills: []string{"go", "sql"},
			Breakdown:     types.FactorBreakdown{Skill: 1, Education: 0.75},
		},
	}
	require.NoError(t, db.SaveScreening(ctx, runID, role, low))
	require.NoError(t, db.SaveScreening(ctx, runID, role, high))

	// Saving the same file again replaces the earlier row
	low.Result.Score = 30
	require.NoError(t, db.SaveScreening(ctx, runID, role, low))

	results, err := db.GetRunResults(ctx, runID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "high.txt", results[0].File)
	assert.Equal(t, []string{"go", "sql"}, results[0].Profile.Skills)
	assert.Equal(t, 0.75, results[0].Breakdown.Education)
	assert.Equal(t, 30, results[1].Score)

	listed, err := db.ListScreenings(ctx, role, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "high.txt", listed[0].File)

	require.NoError(t, db.CompleteRun(ctx, runID, RunStatusCompleted))
	run, err := db.GetRun(ctx, runID)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.NotNil(t, run.CompletedAt)
}

func TestGetRun_NotFound_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	run, err := db.GetRun(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, run)

	err = db.CompleteRun(context.Background(), uuid.New(), RunStatusFailed)
	assert.ErrorContains(t, err, "run not found")
}
