package analysis

import (
	"context"
	"time"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/prompts"
	"github.com/jonathan/resume-screener/internal/validation"
	"go.uber.org/zap"
)

// DefaultMaxResumeChars is how much of a resume is sent to the model.
const DefaultMaxResumeChars = 800

const logPreviewChars = 200

// Analyzer turns raw resume text into generated profile text.
// The zero value is not usable; Client must be set.
type Analyzer struct {
	Client llm.Client
	// MaxResumeChars caps the resume prefix placed in the prompt. Zero means DefaultMaxResumeChars.
	MaxResumeChars int
	// Sanitize redacts instruction-like phrases from the resume before it is sent.
	Sanitize bool
	Logger   *zap.Logger
}

// New creates an Analyzer with default limits.
func New(client llm.Client, log *zap.Logger) *Analyzer {
	return &Analyzer{Client: client, MaxResumeChars: DefaultMaxResumeChars, Logger: log}
}

// Analyze sends the truncated resume to the model and returns its answer with code fences removed.
// Callers must check the error before parsing: a failed call never yields text.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string) (string, error) {
	log := logger.WithProvider(a.Logger, "", a.Client.GetModel(llm.TierStandard))

	text := truncate(resumeText, a.maxChars())
	if check := validation.CheckResumeText(text); !check.IsSafe {
		log.Warn("resume text contains possible prompt injection",
			zap.Strings("phrases", check.DetectedKeywords),
			zap.Bool("sanitized", a.Sanitize))
		if a.Sanitize {
			text = validation.StripInjectionAttempts(text)
		}
	}

	prompt, err := prompts.Render(prompts.AnalysisFile, prompts.AnalyzeResumeKey, map[string]string{
		"ResumeText": text,
	})
	if err != nil {
		return "", &GenerationError{Message: "failed to build prompt", Cause: err}
	}

	start := time.Now()
	log.Debug("sending resume for analysis", zap.Int("prompt_chars", len(prompt)))

	response, err := a.Client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		log.Warn("analysis failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", &GenerationError{Message: "failed to analyze resume", Cause: err}
	}

	response = llm.CleanTextBlock(response)
	if response == "" {
		return "", ErrEmptyResponse
	}

	log.Debug("analysis received",
		zap.Duration("elapsed", time.Since(start)),
		zap.String("response", logger.TruncateForLog(response, logPreviewChars)))
	return response, nil
}

func (a *Analyzer) maxChars() int {
	if a.MaxResumeChars <= 0 {
		return DefaultMaxResumeChars
	}
	return a.MaxResumeChars
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
