package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yzy888666/fuckucodepy/service"
)

var (
	analyzeConfigPath  string
	analyzeFormat      string
	analyzeLang        string
	analyzeTopFiles    int
	analyzeMaxIssues   int
	analyzeConcurrency int
	analyzeIncludes    []string
	analyzeExcludes    []string
	analyzeSummary     bool
	analyzeOutputPath  string
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Analyze source files and rate their smell",
		Long: `Analyze source files across all supported languages and produce a
quality report ranking the worst offenders.

Examples:
  fuck-u-code analyze .
  fuck-u-code analyze --lang en-US src/
  fuck-u-code analyze --format markdown --top 20 src/ lib/
  fuck-u-code analyze --format json -o report.json .`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVarP(&analyzeFormat, "format", "f", "",
		"Output format: terminal, markdown, json")
	cmd.Flags().StringVarP(&analyzeLang, "lang", "l", "",
		"Report language: zh-CN, en-US")
	cmd.Flags().IntVarP(&analyzeTopFiles, "top", "t", -1,
		"Number of worst files to show (0 = all)")
	cmd.Flags().IntVarP(&analyzeMaxIssues, "issues", "i", -1,
		"Max issues shown per file (0 = all)")
	cmd.Flags().IntVar(&analyzeConcurrency, "concurrency", -1,
		"Parallel workers (0 = one per CPU)")
	cmd.Flags().StringSliceVar(&analyzeIncludes, "include", nil,
		"Include patterns (gitignore syntax)")
	cmd.Flags().StringSliceVarP(&analyzeExcludes, "exclude", "e", nil,
		"Additional exclude patterns (gitignore syntax)")
	cmd.Flags().BoolVarP(&analyzeSummary, "summary", "s", false,
		"Hide the per-metric breakdown")
	cmd.Flags().StringVarP(&analyzeOutputPath, "output", "o", "",
		"Write the report to a file instead of stdout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	loader := service.NewConfigurationLoader()
	cfg, err := loader.Load(analyzeConfigPath, args)
	if err != nil {
		return err
	}

	// Flags override the config file
	if analyzeFormat != "" {
		cfg.Output.Format = analyzeFormat
	}
	if analyzeLang != "" {
		cfg.Output.Language = analyzeLang
	}
	if analyzeTopFiles >= 0 {
		cfg.Output.TopFiles = analyzeTopFiles
	}
	if analyzeMaxIssues >= 0 {
		cfg.Output.MaxIssuesPerFile = analyzeMaxIssues
	}
	if analyzeConcurrency >= 0 {
		cfg.Analysis.ConcurrencyLimit = analyzeConcurrency
	}
	if len(analyzeIncludes) > 0 {
		cfg.Analysis.IncludePatterns = analyzeIncludes
	}
	cfg.Analysis.ExcludePatterns = append(cfg.Analysis.ExcludePatterns, analyzeExcludes...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Progress bars clutter machine-readable output
	pm := service.NewProgressManager(cfg.Output.Format == "terminal" && analyzeOutputPath == "")
	defer pm.Close()

	svc := service.NewAnalyzeService(pm)
	resp, err := svc.Analyze(cmd.Context(), loader.BuildRequest(cfg, args, analyzeConfigPath))
	if err != nil {
		return err
	}

	report, err := service.NewReportFormatter().Format(resp, service.ReportOptions{
		Format:        cfg.Output.Format,
		Language:      cfg.Output.Language,
		ShowBreakdown: cfg.Output.ShowBreakdown && !analyzeSummary,
	})
	if err != nil {
		return err
	}

	if analyzeOutputPath != "" {
		if err := os.WriteFile(analyzeOutputPath, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("Report written to %s\n", analyzeOutputPath)
		return nil
	}

	fmt.Print(report)
	return nil
}
