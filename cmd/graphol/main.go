// Package main provides the graphol binary entry point.
// Graphol checks the semantic legality of visual OWL 2 ontology diagrams:
// every edge of every diagram in a project is validated against the
// description-logic construction rules.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ontoworks/graphol/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "graphol"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "graphol",
		Short: "Semantic checker for Graphol ontology projects",
		Long: `Graphol validates visual OWL 2 ontology diagrams.

Every edge in a project is checked against the description-logic
construction rules: inclusions must relate compatible expressions,
constructor operands must carry admissible identities, and assertions
must connect instances to the right predicate kinds.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		checkCmd(&configPath, &logLevel),
		watchCmd(&configPath, &logLevel),
		facetsCmd(),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// setup configures logging and loads the layered configuration. An explicit
// config path replaces the project/user file discovery.
func setup(configPath, logLevel string) (*config.Config, *slog.Logger, error) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if configPath != "" {
		cfg := config.DefaultConfig()
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg.Merge(loaded)
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
		return cfg, logger, nil
	}

	cfg, err := config.NewLoader(logger).Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
