package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	screenCatalog     string
	screenRole        string
	screenOutputFile  string
	screenProvider    string
	screenModel       string
	screenAPIKey      string
	screenDatabaseURL string
	screenWorkers     int
	screenSanitize    bool
)

var screenCmd = &cobra.Command{
	Use:   "screen [flags] FILE...",
	Short: "Screen resume files against a job role",
	Long: `Extract text from each resume (PDF, DOCX or plain text), generate a candidate profile with the
configured language model, score it against the role's required skills, and print the ranked batch.
Results are stored in PostgreSQL when a database URL is configured.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScreen,
}

func init() {
	screenCmd.Flags().StringVarP(&screenCatalog, "catalog", "c", "", "Path to job role catalog (.csv or .json)")
	screenCmd.Flags().StringVarP(&screenRole, "role", "r", "", "Job role title to screen against")
	screenCmd.Flags().StringVarP(&screenOutputFile, "out", "o", "", "Path to output report JSON file")
	screenCmd.Flags().StringVar(&screenProvider, "provider", "", "LLM provider: ollama or gemini")
	screenCmd.Flags().StringVar(&screenModel, "model", "", "Model name (defaults to the provider's model)")
	screenCmd.Flags().StringVar(&screenAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	screenCmd.Flags().StringVar(&screenDatabaseURL, "db-url", "", "Database URL for storing results (overrides DATABASE_URL env var)")
	screenCmd.Flags().IntVarP(&screenWorkers, "workers", "w", 0, "Resumes processed concurrently")
	screenCmd.Flags().BoolVar(&screenSanitize, "sanitize", false, "Redact instruction-like phrases from resumes before analysis")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, files []string) error {
	settings, err := loadSettings(config.Config{
		Catalog:     screenCatalog,
		Role:        screenRole,
		Provider:    screenProvider,
		Model:       screenModel,
		APIKey:      screenAPIKey,
		DatabaseURL: screenDatabaseURL,
		Workers:     screenWorkers,
	})
	if err != nil {
		return err
	}

	log, err := newLogger(settings)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	c, err := loadCatalog(settings.Catalog)
	if err != nil {
		return err
	}
	role, err := lookupRole(c, settings.Role)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	llmConfig := newLLMConfig(settings)
	client, err := llm.NewClient(ctx, llmConfig, settings.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	analyzer := analysis.New(client, logger.WithProvider(log, string(llmConfig.Provider), client.GetModel(llm.TierStandard)))
	analyzer.MaxResumeChars = settings.MaxResumeChars
	analyzer.Sanitize = screenSanitize

	screener := &screening.Screener{
		Extractor: extraction.Extractor{},
		Analyzer:  analyzer,
		Logger:    log,
		Workers:   settings.Workers,
	}

	if settings.DatabaseURL != "" {
		database, err := connectStore(ctx, settings.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		screener.Store = database
	}

	report, err := screener.Screen(ctx, role, files)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintReport(report)

	if screenOutputFile == "" {
		return nil
	}
	if err := validateOutput(cmd.ErrOrStderr(), schemas.ScreeningReport, report); err != nil {
		return err
	}
	if err := writeJSONFile(screenOutputFile, report); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", screenOutputFile)
	log.Debug("report written", zap.String("path", screenOutputFile))
	return nil
}

// newLLMConfig builds the model configuration from resolved settings
func newLLMConfig(settings config.Config) *llm.Config {
	cfg := llm.ConfigFor(llm.Provider(settings.Provider), settings.Model)
	if cfg.Provider == llm.ProviderOllama && settings.OllamaURL != "" {
		cfg.BaseURL = settings.OllamaURL
	}
	if settings.RequestTimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(settings.RequestTimeoutSeconds) * time.Second
	}
	return cfg
}

// connectStore opens the results database and applies the schema
func connectStore(ctx context.Context, databaseURL string) (*db.DB, error) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}
