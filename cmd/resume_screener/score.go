package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/jonathan/resume-screener/schemas"
	"github.com/spf13/cobra"
)

var (
	scoreInputFile  string
	scoreOutputFile string
	scoreCatalog    string
	scoreRole       string
)

// ScoreOutput is the JSON document written by the score command
type ScoreOutput struct {
	Role    string                 `json:"role"`
	Profile types.CandidateProfile `json:"profile"`
	Result  types.MatchResult      `json:"result"`
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score generated profile text against a job role",
	Long:  "Parse generated profile text and score it against the required skills of one catalog role.",
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to generated profile text (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file")
	scoreCmd.Flags().StringVarP(&scoreCatalog, "catalog", "c", "", "Path to job role catalog (.csv or .json)")
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Job role title to score against")
	_ = scoreCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(config.Config{Catalog: scoreCatalog, Role: scoreRole})
	if err != nil {
		return err
	}
	c, err := loadCatalog(settings.Catalog)
	if err != nil {
		return err
	}
	role, err := lookupRole(c, settings.Role)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(scoreInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	profile, result := screening.ScreenText(role, string(raw))

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintProfile(&profile)
	printer.PrintMatch(role.Title, &result)

	if scoreOutputFile == "" {
		return nil
	}
	if err := validateOutput(cmd.ErrOrStderr(), schemas.MatchResult, result); err != nil {
		return err
	}
	if err := writeJSONFile(scoreOutputFile, ScoreOutput{Role: role.Title, Profile: profile, Result: result}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", scoreOutputFile)
	return nil
}
