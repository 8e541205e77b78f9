package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seo-optimizer/aiready/analyzer"
	"github.com/seo-optimizer/aiready/config"
	"github.com/seo-optimizer/aiready/fetcher"
	"github.com/seo-optimizer/aiready/logging"
	"github.com/seo-optimizer/aiready/metrics"
	"github.com/seo-optimizer/aiready/narrative"
	"github.com/seo-optimizer/aiready/stats"
)

// Version is set via ldflags during build
var Version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "aiready",
		Short: "aiready - AI search readiness analyzer",
		Long: `aiready scores a web page on how likely AI search engines are to
understand, quote and cite it, and explains how to improve.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(analyzeCmd(&configPath))
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aiready version %s\n", Version)
		},
	}
}

// app bundles the collaborators shared by serve and analyze
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	storage  *stats.Storage
	analyzer *analyzer.Analyzer
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	storage, err := stats.NewStorage(cfg.Server.DataDir, logger)
	if err != nil {
		return nil, err
	}

	opts := []analyzer.Option{
		analyzer.WithLogger(logger),
		analyzer.WithStats(storage),
		analyzer.WithMetrics(metrics.New()),
		analyzer.WithCache(cfg.Cache.TTL, cfg.Cache.MaxSize),
		analyzer.WithCleanupInterval(cfg.Cache.CleanupInterval),
	}
	if cfg.NarrativeEnabled() {
		provider := narrative.NewAnthropicProvider(cfg.Narrative.APIKey, cfg.Narrative.Model)
		opts = append(opts, analyzer.WithNarrator(narrative.NewAnalyzer(cfg.Narrative.Timeout, provider)))
	} else {
		logger.Info("Narrative analysis disabled: no API key configured")
	}

	a := analyzer.New(fetcher.New(cfg.Fetch.Timeout, cfg.Fetch.UserAgent), opts...)

	return &app{cfg: cfg, logger: logger, storage: storage, analyzer: a}, nil
}

// close stops the analyzer and flushes the monthly counters
func (a *app) close() {
	a.analyzer.Shutdown()
	if err := a.storage.Close(); err != nil {
		a.logger.Warn("Failed to save stats", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// exitCode maps analysis failures to distinct process exit codes
func exitCode(err error) int {
	aerr, ok := asAnalysisError(err)
	if !ok {
		return 1
	}
	switch aerr.Kind {
	case analyzer.KindInvalidInput:
		return 2
	case analyzer.KindUnreachable, analyzer.KindBlocked:
		return 3
	case analyzer.KindTimeout:
		return 4
	default:
		return 1
	}
}
