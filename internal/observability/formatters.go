// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxResumesToShow is how many ranked resumes a report box lists
	maxResumesToShow = 10
)

// Printer handles formatted output for terminal reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintProfile outputs a human-readable summary of a parsed candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggested Role:  %s\n", orDash(profile.SuggestedRole)))
	sb.WriteString(fmt.Sprintf("Education:       %s\n", orDash(profile.Education)))
	sb.WriteString(fmt.Sprintf("Certifications:  %s\n", orDash(profile.Certifications)))
	sb.WriteString(fmt.Sprintf("Experience:      %s\n", orDash(profile.Experience)))
	writeList(&sb, "Skills", profile.Skills)
	writeList(&sb, "Projects", profile.Projects)

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the score, factor breakdown and matched skills for one role.
func (p *Printer) PrintMatch(roleTitle string, result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:   %s\n", roleTitle))
	sb.WriteString(fmt.Sprintf("Score:  %d/100\n\n", result.Score))
	sb.WriteString(fmt.Sprintf("  skills         %.2f\n", result.Breakdown.Skill))
	sb.WriteString(fmt.Sprintf("  education      %.2f\n", result.Breakdown.Education))
	sb.WriteString(fmt.Sprintf("  certification  %.2f\n", result.Breakdown.Certification))
	sb.WriteString(fmt.Sprintf("  experience     %.2f\n", result.Breakdown.Experience))
	sb.WriteString(fmt.Sprintf("  projects       %.2f\n", result.Breakdown.Project))

	if len(result.Evidence) > 0 {
		sb.WriteString("\nMatched:\n")
		for _, ev := range result.Evidence {
			if ev.Method == types.MatchMethodFuzzy {
				sb.WriteString(fmt.Sprintf("  ~ %s (%q, %.2f)\n", ev.Skill, ev.Token, ev.Ratio))
			} else {
				sb.WriteString(fmt.Sprintf("  ✓ %s\n", ev.Skill))
			}
		}
	} else if len(result.MatchedSkills) > 0 {
		sb.WriteString("\nMatched:\n")
		for _, skill := range result.MatchedSkills {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", skill))
		}
	}

	sb.WriteString("\n" + ranking.Summary(*result) + "\n")
	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the ranked resumes of a screening batch followed by any failures.
func (p *Printer) PrintReport(report *types.ScreeningReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:     %s\n", report.Role))
	sb.WriteString(fmt.Sprintf("Run:      %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Resumes:  %d\n\n", len(report.Resumes)))

	var failures []types.ScreenedResume
	shown := 0
	for _, r := range report.Resumes {
		if r.Failed() {
			failures = append(failures, r)
			continue
		}
		if shown == maxResumesToShow {
			continue
		}
		shown++
		sb.WriteString(fmt.Sprintf("#%-2d %3d  %s\n", shown, r.Result.Score, r.Name))
		if len(r.Result.MatchedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("         %s\n", strings.Join(r.Result.MatchedSkills, ", ")))
		}
	}
	if succeeded := len(report.Resumes) - len(failures); succeeded > shown {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", succeeded-shown))
	}

	if len(failures) > 0 {
		sb.WriteString(fmt.Sprintf("\nFailed (%d):\n", len(failures)))
		for _, r := range failures {
			sb.WriteString(fmt.Sprintf("  ✗ %s: %s\n", r.Name, r.Error))
		}
	}

	p.printBox("SCREENING REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoles outputs catalog role titles with their required skill counts.
func (p *Printer) PrintRoles(roles []types.JobRole) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total roles: %d\n\n", len(roles)))
	for _, role := range roles {
		sb.WriteString(fmt.Sprintf("%-44s %3d skills\n", truncate(role.Title, 44), len(role.RequiredSkills)))
	}
	p.printBox("JOB ROLES", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("%s: -\n", label))
		return
	}
	sb.WriteString(fmt.Sprintf("%s:\n", label))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
