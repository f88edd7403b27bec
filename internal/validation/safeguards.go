// Package validation flags resume text that tries to steer the analysis model.
package validation

import (
	"regexp"
	"strings"
)

// InjectionCheckResult holds the result of a basic injection heuristic check.
type InjectionCheckResult struct {
	IsSafe           bool     // Whether the content passed the heuristic check
	DetectedKeywords []string // Suspicious phrases found, in list order
	Reason           string   // Human-readable explanation
}

// InjectionPhrases are phrases that have no business in a resume but do appear in attempts
// to override the analysis prompt. Single words such as "ignore" are left out because
// they show up in ordinary experience descriptions.
var InjectionPhrases = []string{
	"system prompt",
	"ignore previous",
	"ignore all",
	"ignore the above",
	"disregard above",
	"disregard previous",
	"forget everything",
	"new instructions",
	"score this candidate",
	"rate this resume",
}

// injectionPatterns catch the looser spellings of the same attempts.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above)\s+instructions?`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|prior|above)`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?(previous|prior|everything)`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+an?\b`),
	regexp.MustCompile(`(?i)new\s+instructions?:`),
}

// CheckResumeText performs a phrase and pattern check for obvious injection attempts.
// It is a heuristic for logging; it never blocks a resume.
func CheckResumeText(text string) *InjectionCheckResult {
	lowerText := strings.ToLower(text)
	var detected []string

	for _, phrase := range InjectionPhrases {
		if strings.Contains(lowerText, phrase) {
			detected = append(detected, phrase)
		}
	}
	for _, pattern := range injectionPatterns {
		if match := pattern.FindString(text); match != "" && !containsFold(detected, match) {
			detected = append(detected, strings.ToLower(match))
		}
	}

	if len(detected) == 0 {
		return &InjectionCheckResult{IsSafe: true}
	}
	return &InjectionCheckResult{
		IsSafe:           false,
		DetectedKeywords: detected,
		Reason:           "detected potential injection phrases: " + strings.Join(detected, ", "),
	}
}

// StripInjectionAttempts replaces pattern matches with [REDACTED].
func StripInjectionAttempts(text string) string {
	result := text
	for _, pattern := range injectionPatterns {
		result = pattern.ReplaceAllString(result, "[REDACTED]")
	}
	return result
}

func containsFold(items []string, s string) bool {
	for _, item := range items {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}
