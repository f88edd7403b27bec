package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-screener/internal/types"
)

const selectResultColumns = `SELECT id, run_id, file, role_title, suggested_role, skills, experience,
		education, certifications, projects, score, matched_skills, breakdown, raw_text,
		COALESCE(error_message, ''), created_at
	FROM screening_results`

// SaveScreening stores one screened resume, replacing any earlier result for the same run and file
func (db *DB) SaveScreening(ctx context.Context, runID uuid.UUID, roleTitle string, resume *types.ScreenedResume) error {
	rec := RecordFromResume(runID, roleTitle, resume)

	breakdown, err := json.Marshal(rec.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal breakdown: %w", err)
	}
	var errMsg *string
	if rec.Error != "" {
		errMsg = &rec.Error
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO screening_results (run_id, file, role_title, suggested_role, skills, experience,
		     education, certifications, projects, score, matched_skills, breakdown, raw_text, error_message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 ON CONFLICT (run_id, file) DO UPDATE SET
		     role_title = $3, suggested_role = $4, skills = $5, experience = $6, education = $7,
		     certifications = $8, projects = $9, score = $10, matched_skills = $11, breakdown = $12,
		     raw_text = $13, error_message = $14, created_at = NOW()`,
		rec.RunID, rec.File, rec.RoleTitle, rec.Profile.SuggestedRole, rec.Profile.Skills,
		rec.Profile.Experience, rec.Profile.Education, rec.Profile.Certifications, rec.Profile.Projects,
		rec.Score, rec.MatchedSkills, breakdown, rec.RawText, errMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to save screening result for %s: %w", rec.File, err)
	}
	return nil
}

// ListScreenings returns stored results, best score first. An empty role lists every role.
func (db *DB) ListScreenings(ctx context.Context, roleTitle string, limit int) ([]ScreeningRecord, error) {
	query := selectResultColumns
	args := []any{}
	argNum := 1

	if roleTitle != "" {
		query += fmt.Sprintf(" WHERE role_title = $%d", argNum)
		args = append(args, roleTitle)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY score DESC, created_at ASC, id ASC LIMIT $%d", argNum)
	args = append(args, ClampLimit(limit))

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list screenings: %w", err)
	}
	return collectRecords(rows)
}

// GetRunResults returns every result of one screening run, best score first
func (db *DB) GetRunResults(ctx context.Context, runID uuid.UUID) ([]ScreeningRecord, error) {
	rows, err := db.pool.Query(ctx,
		selectResultColumns+` WHERE run_id = $1 ORDER BY score DESC, id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get run results: %w", err)
	}
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]ScreeningRecord, error) {
	defer rows.Close()

	records := []ScreeningRecord{}
	for rows.Next() {
		var rec ScreeningRecord
		var breakdown []byte
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.File, &rec.RoleTitle,
			&rec.Profile.SuggestedRole, &rec.Profile.Skills, &rec.Profile.Experience,
			&rec.Profile.Education, &rec.Profile.Certifications, &rec.Profile.Projects,
			&rec.Score, &rec.MatchedSkills, &breakdown, &rec.RawText, &rec.Error, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan screening result: %w", err)
		}
		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &rec.Breakdown); err != nil {
				return nil, fmt.Errorf("failed to decode breakdown for %s: %w", rec.File, err)
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate screening results: %w", err)
	}
	return records, nil
}
