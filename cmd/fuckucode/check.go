package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/service"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMaxScore    float64
	checkMaxCritical int
	checkJSON        bool
	checkConfigPath  string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Quality gate for CI/CD pipelines",
		Long: `Run the analysis and fail when the project score crosses a threshold.

Exit codes:
  0 - Score within threshold
  1 - Threshold violated
  2 - Analysis error (file not found, config error, etc.)

Examples:
  # Fail when the project scores worse than 40
  fuck-u-code check --max-score 40 src/

  # Also fail on any critical issue
  fuck-u-code check --max-score 40 --max-critical 0 src/

  # JSON output for machine parsing
  fuck-u-code check --json src/`,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Float64Var(&checkMaxScore, "max-score", 55,
		"Maximum allowed project score")
	cmd.Flags().IntVar(&checkMaxCritical, "max-critical", -1,
		"Maximum allowed critical issues (-1 = unlimited)")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

// checkResult is the machine-readable outcome of one gate run
type checkResult struct {
	Passed      bool    `json:"passed"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"max_score"`
	Level       string  `json:"level"`
	Critical    int     `json:"critical_issues"`
	MaxCritical int     `json:"max_critical,omitempty"`
	Files       int     `json:"files_analyzed"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: 2, Message: "no paths specified"}
	}

	loader := service.NewConfigurationLoader()
	cfg, err := loader.Load(checkConfigPath, args)
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	svc := service.NewAnalyzeService(nil)
	resp, err := svc.Analyze(cmd.Context(), loader.BuildRequest(cfg, args, checkConfigPath))
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	a := &resp.Assessment
	critical := a.IssueCounts[domain.SeverityCritical]
	result := checkResult{
		Passed:      a.Score <= checkMaxScore,
		Score:       a.Score,
		MaxScore:    checkMaxScore,
		Level:       string(a.Level),
		Critical:    critical,
		MaxCritical: checkMaxCritical,
		Files:       a.AnalyzedFiles,
	}
	if checkMaxCritical >= 0 && critical > checkMaxCritical {
		result.Passed = false
	}

	if checkJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return &CheckExitError{Code: 2, Message: err.Error()}
		}
		fmt.Println(string(data))
	} else if result.Passed {
		fmt.Printf("OK: score %.2f <= %.2f (%d files)\n", a.Score, checkMaxScore, a.AnalyzedFiles)
	} else {
		fmt.Fprintf(os.Stderr, "FAIL: score %.2f > %.2f or critical issues %d over limit\n",
			a.Score, checkMaxScore, critical)
	}

	if !result.Passed {
		// Output already printed; exit silently with code 1
		return &CheckExitError{Code: 1}
	}
	return nil
}
