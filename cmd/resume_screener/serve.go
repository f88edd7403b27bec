package main

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort        int
	serveCatalog     string
	serveDatabaseURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the job role catalog and scores generated profile text.
Stored results are served when a database URL is configured.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveCatalog, "catalog", "c", "", "Path to job role catalog (.csv or .json)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(config.Config{Catalog: serveCatalog, DatabaseURL: serveDatabaseURL})
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

	cfg := server.Config{
		Port:    servePort,
		Catalog: c,
		Logger:  log,
	}
	if settings.DatabaseURL != "" {
		database, err := connectStore(cmd.Context(), settings.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		cfg.Store = database
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
