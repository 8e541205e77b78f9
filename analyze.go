package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/seo-optimizer/aiready/analyzer"
)

func analyzeCmd(configPath *string) *cobra.Command {
	var (
		withNarrative bool
		format        string
	)

	cmd := &cobra.Command{
		Use:   "analyze [url]",
		Short: "Analyze one page and print the report",
		Long: `Analyze fetches a single page and scores its AI search readiness.

Examples:
  aiready analyze https://example.com/blog/post
  aiready analyze https://example.com --format json
  aiready analyze https://example.com --narrative`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("unsupported format %q (use text, json or yaml)", format)
			}

			var target string
			if len(args) == 1 {
				target = args[0]
			} else {
				if !isTerminal(os.Stdin) {
					return errors.New("a URL is required")
				}
				var err error
				if target, err = promptURL(); err != nil {
					return err
				}
			}

			return runAnalyze(cmd.Context(), *configPath, target, analyzer.Options{Narrative: withNarrative}, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&withNarrative, "narrative", false, "Request the narrative analysis and blend its score")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	return cmd
}

func runAnalyze(ctx context.Context, configPath, target string, opts analyzer.Options, format string, out io.Writer) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	stopSpinner := startSpinner("Analyzing " + target)
	result, err := a.analyzer.Analyze(ctx, target, opts)
	stopSpinner()
	if err != nil {
		return err
	}

	return writeReport(out, result, format)
}

func promptURL() (string, error) {
	prompt := promptui.Prompt{
		Label: "URL to analyze",
		Validate: func(input string) error {
			if err := analyzer.ValidateURL(input); err != nil {
				var aerr *analyzer.AnalysisError
				if errors.As(err, &aerr) {
					return errors.New(aerr.Message)
				}
				return err
			}
			return nil
		},
	}

	target, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("URL input cancelled: %w", err)
	}
	return target, nil
}

// startSpinner shows an indeterminate progress bar on stderr when it is a
// terminal. The returned func stops and clears it.
func startSpinner(description string) func() {
	if !isTerminal(os.Stderr) {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = bar.Add(1)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
		_ = bar.Finish()
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func asAnalysisError(err error) (*analyzer.AnalysisError, bool) {
	var aerr *analyzer.AnalysisError
	ok := errors.As(err, &aerr)
	return aerr, ok
}
