// Command enrich runs the affiliation enrichment steps on a JSON request
// state read from a file or stdin. It is a debugging aid for attribute
// mapping and blacklist configuration; the step config format is YAML.
//
// Usage:
//
//	enrich --config step.yaml state.json
//	cat state.json | enrich --config step.yaml
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rciam/caddy-affiliation/internal/adapters/driven/metadata"
	"github.com/rciam/caddy-affiliation/internal/core/domain"
	"github.com/rciam/caddy-affiliation/internal/core/engine"
	"github.com/rciam/caddy-affiliation/internal/core/ports"
)

// stepConfig is the YAML configuration for one enrichment step.
type stepConfig struct {
	Mode                        string   `yaml:"mode"`
	ScopedAffiliation           string   `yaml:"scoped_affiliation"`
	OAttribute                  string   `yaml:"o_attribute"`
	PrimaryAffiliationAttribute string   `yaml:"primary_affiliation_attribute"`
	SPBlacklist                 []string `yaml:"sp_blacklist"`
	IdPBlacklist                []string `yaml:"idp_blacklist"`
	SetDefaultAffiliation       bool     `yaml:"set_default_affiliation"`
	PreferredLanguage           string   `yaml:"preferred_language"`
	MetadataFile                string   `yaml:"metadata_file"`
}

func main() {
	var (
		configPath   string
		metadataPath string
		debug        bool
	)

	cmd := &cobra.Command{
		Use:   "enrich [state.json]",
		Short: "Run affiliation enrichment on a JSON request state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if debug {
				var err error
				logger, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
				defer logger.Sync()
			}
			return run(cmd, args, configPath, metadataPath, logger)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "step config file (YAML)")
	cmd.Flags().StringVarP(&metadataPath, "metadata", "m", "", "SAML metadata file (overrides config)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, configPath, metadataPath string, logger *zap.Logger) error {
	cfg, err := loadStepConfig(configPath)
	if err != nil {
		return err
	}
	if metadataPath != "" {
		cfg.MetadataFile = metadataPath
	}

	var directory ports.MetadataDirectory
	if cfg.MetadataFile != "" {
		dir := metadata.NewFileDirectory(cfg.MetadataFile, domain.CategoryRemoteIdentityProvider,
			metadata.WithLogger(logger))
		if err := dir.Load(); err != nil {
			return err
		}
		directory = dir
	}

	processor, err := buildProcessor(cfg, directory, logger)
	if err != nil {
		return err
	}

	state, err := readState(args)
	if err != nil {
		return err
	}

	if err := processor.Process(state); err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	out := json.NewEncoder(cmd.OutOrStdout())
	out.SetIndent("", "  ")
	return out.Encode(state)
}

func loadStepConfig(path string) (*stepConfig, error) {
	cfg := &stepConfig{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

func buildProcessor(cfg *stepConfig, directory ports.MetadataDirectory, logger *zap.Logger) (ports.StateProcessor, error) {
	if cfg.Mode == "organization" {
		return engine.NewOrgResolver(engine.OrgResolverConfig{
			OrganizationAttribute:       cfg.OAttribute,
			PrimaryAffiliationAttribute: cfg.PrimaryAffiliationAttribute,
			SetDefaultAffiliation:       cfg.SetDefaultAffiliation,
			ExcludedRequestingParties:   cfg.SPBlacklist,
			ExcludedRespondingParties:   cfg.IdPBlacklist,
			PreferredLanguage:           cfg.PreferredLanguage,
		}, directory, engine.WithLogger(logger))
	}

	return engine.NewClassifier(engine.ClassifierConfig{
		ScopedAffiliationAttribute:  cfg.ScopedAffiliation,
		OrganizationAttribute:       cfg.OAttribute,
		PrimaryAffiliationAttribute: cfg.PrimaryAffiliationAttribute,
		ExcludedRequestingParties:   cfg.SPBlacklist,
		ExcludedRespondingParties:   cfg.IdPBlacklist,
		PreferredLanguage:           cfg.PreferredLanguage,
	}, directory, engine.WithLogger(logger))
}

func readState(args []string) (*domain.RequestState, error) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("read request state: %w", err)
	}

	state := &domain.RequestState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("parse request state: %w", err)
	}
	return state, nil
}
