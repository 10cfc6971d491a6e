// Package main provides the ontodash binary entry point.
// Ontodash runs curation-principle compliance checks across the
// ontology registry's content collection and writes per-namespace
// reports.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontodash/config"
	"github.com/c360studio/ontodash/dashboard"
	"github.com/c360studio/ontodash/owl"
	"github.com/c360studio/ontodash/principles"
	"github.com/c360studio/ontodash/registry"
	"github.com/c360studio/ontodash/vocabulary/ro"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontodash"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

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
		Use:   appName,
		Short: "Ontology registry principle checks",
		Long: `Ontodash checks the ontologies described by the registry's
markdown pages against the curation principles with automated checks:

- relations: declared relations must reuse the canonical relations
  ontology by identifier rather than redefining them
- maintenance: the ontology must have been released recently

Verdicts are written to per-namespace TSV reports plus an aggregate
summary under the reports directory.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(runCommand(&configPath, &logLevel))
	cmd.AddCommand(checkCommand(&configPath, &logLevel))
	cmd.AddCommand(watchCommand(&configPath, &logLevel))

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// runCommand checks every namespace in the registry.
func runCommand(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Check every namespace in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, logger, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}

			summary, err := runner.Run(signalContext())
			if err != nil {
				return err
			}

			failing := 0
			for _, res := range summary.Results {
				fmt.Printf("%s\t%s\n", res.Namespace, res.Worst())
				if res.Worst().WorseThan(principles.LevelInfo) {
					failing++
				}
			}
			logger.Info("Run finished",
				slog.Int("namespaces", len(summary.Results)),
				slog.Int("failing", failing))
			return nil
		},
	}
}

// checkCommand checks a single namespace.
func checkCommand(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check <namespace>",
		Short: "Check a single namespace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, _, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}

			reg := registry.New(cfg.Registry.Dir, cfg.Registry.Pattern, slog.Default())
			page, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			result := runner.CheckNamespace(page)
			for slug, verdict := range result.Verdicts {
				fmt.Printf("%s\t%s\n", slug, verdict)
			}
			return nil
		},
	}
}

// watchCommand re-checks namespaces as their pages change.
func watchCommand(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-check namespaces when registry pages change",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, logger, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}

			watcher := dashboard.NewWatcher(runner, cfg.Registry.Dir, 0, logger)
			err = watcher.Watch(signalContext())
			if err == context.Canceled {
				return nil
			}
			return err
		},
	}
}

// setup configures logging, loads configuration, builds the reference
// mapping from the canonical relations artifact, and returns the runner.
func setup(configPath, logLevel string) (*dashboard.Runner, *config.Config, *slog.Logger, error) {
	// Configure logging
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

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	mapping, err := loadReferenceMapping(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	metrics := dashboard.NewMetrics(nil)
	return dashboard.NewRunner(cfg, mapping, metrics, logger), cfg, logger, nil
}

// loadConfig loads configuration from an explicit path or the layered
// default locations.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(slog.Default()).Load()
}

// loadReferenceMapping builds the canonical relations mapping from the
// configured relations ontology artifact. A missing artifact yields an
// empty mapping with a warning: the relations check then reports every
// property as non-canonical rather than blocking the run.
func loadReferenceMapping(cfg *config.Config, logger *slog.Logger) (ro.Mapping, error) {
	model, err := owl.LoadModel(cfg.Relations.SourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Relations ontology not found, using empty reference mapping",
				slog.String("path", cfg.Relations.SourcePath))
			return ro.NewMapping(nil), nil
		}
		return ro.Mapping{}, fmt.Errorf("load relations ontology: %w", err)
	}

	records, err := model.Properties()
	if err != nil {
		return ro.Mapping{}, fmt.Errorf("extract relations ontology properties: %w", err)
	}

	mapping := ro.MappingFromRecords(records)
	logger.Debug("Loaded reference mapping",
		slog.String("path", cfg.Relations.SourcePath),
		slog.Int("relations", mapping.Len()))
	return mapping, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx
}
