package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-screener/internal/catalog"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
	"go.uber.org/zap"
)

// loadSettings resolves the config file, environment and defaults.
// overrides holds non-empty flag values, which win over everything else.
func loadSettings(overrides config.Config) (config.Config, error) {
	explicit := &config.Config{}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		explicit = fileCfg
	}
	merged := overrides.MergeWithDefaults(*explicit)
	merged.Verbose = merged.Verbose || explicit.Verbose || verbose
	merged.JSONLogs = merged.JSONLogs || explicit.JSONLogs || jsonLogs
	return config.Resolve(&merged)
}

func newLogger(settings config.Config) (*zap.Logger, error) {
	log, err := logger.New(settings.JSONLogs, settings.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return nil, errors.New("catalog is required (use --catalog or set \"catalog\" in the config file)")
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

func lookupRole(c *catalog.Catalog, title string) (types.JobRole, error) {
	if title == "" {
		return types.JobRole{}, errors.New("role is required (use --role or set \"role\" in the config file)")
	}
	role, ok := c.Lookup(title)
	if !ok {
		return types.JobRole{}, fmt.Errorf("unknown role %q (run 'resume_screener roles' to list titles)", title)
	}
	return role, nil
}

// validateOutput checks v against a bundled schema. A document that does not match fails the
// command; a schema that cannot be loaded only produces a warning.
func validateOutput(stderr io.Writer, schemaName string, v any) error {
	err := schemas.ValidateValue(schemaName, v)
	if err == nil {
		return nil
	}
	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	switch {
	case errors.As(err, &validationErr):
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	case errors.As(err, &schemaLoadErr):
		_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
	default:
		_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema: %v\n", err)
	}
	return nil
}

// writeJSONFile writes v as indented JSON to path.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
