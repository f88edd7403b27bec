package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/schemas"
	"github.com/spf13/cobra"
)

var (
	parseInputFile  string
	parseOutputFile string
)

var parseProfileCmd = &cobra.Command{
	Use:   "parse-profile",
	Short: "Parse generated profile text into CandidateProfile JSON",
	Long: "Parse line-oriented profile text (Role:, Skills:, Experience:, Education:, Certifications:, Projects:) " +
		"into a CandidateProfile. Parsing never fails; missing fields are left empty.",
	Args: cobra.NoArgs,
	RunE: runParseProfile,
}

func init() {
	parseProfileCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to generated profile text (required)")
	parseProfileCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file")
	_ = parseProfileCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseProfileCmd)
}

func runParseProfile(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	profile := parsing.ParseProfile(string(raw))
	observability.NewPrinter(cmd.OutOrStdout()).PrintProfile(&profile)

	if parseOutputFile == "" {
		return nil
	}
	if err := validateOutput(cmd.ErrOrStderr(), schemas.CandidateProfile, profile); err != nil {
		return err
	}
	if err := writeJSONFile(parseOutputFile, profile); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", parseOutputFile)
	return nil
}
