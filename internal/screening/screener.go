// Package screening runs a batch of resume files through extraction, analysis and scoring.
package screening

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of resumes processed concurrently.
const DefaultWorkers = 4

// TextExtractor reads the text of a resume file.
type TextExtractor interface {
	ExtractFile(path string) (string, error)
}

// Analyzer turns resume text into line-oriented profile text.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText string) (string, error)
}

// Store persists screening runs. *db.DB satisfies it.
type Store interface {
	CreateRun(ctx context.Context, runID uuid.UUID, roleTitle string, fileCount int) error
	SaveScreening(ctx context.Context, runID uuid.UUID, roleTitle string, resume *types.ScreenedResume) error
	CompleteRun(ctx context.Context, runID uuid.UUID, status string) error
}

// Screener screens resume files against a job role.
type Screener struct {
	Extractor TextExtractor
	Analyzer  Analyzer
	// Store is optional; results are only persisted when it is set.
	Store   Store
	Logger  *zap.Logger
	Workers int
}

// Screen extracts, analyzes and scores every file in paths, then ranks them by descending score.
// A failure on one file is recorded on that resume and does not stop the batch.
// Only cancellation of ctx aborts the batch.
func (s *Screener) Screen(ctx context.Context, role types.JobRole, paths []string) (*types.ScreeningReport, error) {
	report := &types.ScreeningReport{
		RunID:     uuid.New(),
		Role:      role.Title,
		CreatedAt: time.Now().UTC(),
	}
	log := logger.OrNop(s.Logger).With(
		zap.String(logger.FieldRunID, report.RunID.String()),
		zap.String("role", role.Title),
	)
	log.Info("screening started", zap.Int("files", len(paths)), zap.Int("workers", s.workers()))

	if s.Store != nil {
		if err := s.Store.CreateRun(ctx, report.RunID, role.Title, len(paths)); err != nil {
			log.Warn("failed to record run", zap.Error(err))
		}
	}

	results := make([]types.ScreenedResume, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.screenFile(gctx, role, path, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.completeRun(ctx, report.RunID, db.RunStatusFailed, log)
		return nil, fmt.Errorf("screening aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		s.completeRun(ctx, report.RunID, db.RunStatusFailed, log)
		return nil, fmt.Errorf("screening aborted: %w", err)
	}

	ranking.RankResults(results)
	report.Resumes = results

	if s.Store != nil {
		for i := range results {
			if err := s.Store.SaveScreening(ctx, report.RunID, role.Title, &results[i]); err != nil {
				log.Warn("failed to persist result", zap.String("file", results[i].Name), zap.Error(err))
			}
		}
		s.completeRun(ctx, report.RunID, db.RunStatusCompleted, log)
	}

	log.Info("screening finished", zap.Int("resumes", len(results)), zap.Int("failed", countFailed(results)))
	return report, nil
}

// ScreenText parses already generated profile text and scores it against role.
func ScreenText(role types.JobRole, generated string) (types.CandidateProfile, types.MatchResult) {
	profile := parsing.ParseProfile(generated)
	return profile, ranking.ScoreRole(profile, role)
}

func (s *Screener) screenFile(ctx context.Context, role types.JobRole, path string, log *zap.Logger) types.ScreenedResume {
	resume := types.ScreenedResume{
		Name: filepath.Base(path),
		Path: path,
	}
	log = log.With(zap.String("file", resume.Name))

	text, err := s.Extractor.ExtractFile(path)
	if err != nil {
		log.Warn("extraction failed", zap.Error(err))
		return failed(resume, fmt.Errorf("failed to extract text: %w", err))
	}

	generated, err := s.Analyzer.Analyze(ctx, text)
	if err != nil {
		log.Warn("analysis failed", zap.Error(err))
		return failed(resume, err)
	}

	resume.RawText = generated
	resume.Profile, resume.Result = ScreenText(role, generated)
	log.Info("resume scored",
		zap.Int("score", resume.Result.Score),
		zap.Strings("matched", resume.Result.MatchedSkills))
	return resume
}

func (s *Screener) completeRun(ctx context.Context, runID uuid.UUID, status string, log *zap.Logger) {
	if s.Store == nil {
		return
	}
	// The batch context may already be cancelled; finishing the run record should still happen.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Store.CompleteRun(ctx, runID, status); err != nil {
		log.Warn("failed to complete run", zap.Error(err))
	}
}

func (s *Screener) workers() int {
	if s.Workers <= 0 {
		return DefaultWorkers
	}
	return s.Workers
}

// failed records err on resume with an empty profile and a zero score.
func failed(resume types.ScreenedResume, err error) types.ScreenedResume {
	resume.Error = err.Error()
	resume.Profile = parsing.ParseProfile("")
	resume.Result = types.MatchResult{
		MatchedSkills: []string{},
		Evidence:      []types.SkillEvidence{},
	}
	return resume
}

func countFailed(results []types.ScreenedResume) int {
	n := 0
	for i := range results {
		if results[i].Failed() {
			n++
		}
	}
	return n
}
