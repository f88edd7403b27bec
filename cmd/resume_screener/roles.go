package main

import (
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/spf13/cobra"
)

var rolesCatalog string

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the job roles in a catalog",
	Long:  "Load a job role catalog (.csv or .json) and list each role title with its number of required skills.",
	Args:  cobra.NoArgs,
	RunE:  runRoles,
}

func init() {
	rolesCmd.Flags().StringVarP(&rolesCatalog, "catalog", "c", "", "Path to job role catalog (.csv or .json)")
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(config.Config{Catalog: rolesCatalog})
	if err != nil {
		return err
	}
	c, err := loadCatalog(settings.Catalog)
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintRoles(c.Roles())
	return nil
}
