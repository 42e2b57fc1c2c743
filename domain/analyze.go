package domain

import (
	"context"
)

// Severity represents how serious an issue is
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank returns the ordering weight of a severity (higher = more severe)
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// IssueCode is a symbolic identifier for an issue kind. Codes are rendered
// into human-readable text by the reporting layer, never by the core.
type IssueCode string

const (
	IssueParseFailed          IssueCode = "parse_failed"
	IssueUnreadableFile       IssueCode = "unreadable_file"
	IssueHighComplexity       IssueCode = "high_complexity"
	IssueDeepNesting          IssueCode = "deep_nesting"
	IssueLongFunction         IssueCode = "long_function"
	IssueTooManyParams        IssueCode = "too_many_params"
	IssueLowCommentRatio      IssueCode = "low_comment_ratio"
	IssueMissingErrorHandling IssueCode = "missing_error_handling"
	IssueNamingViolation      IssueCode = "naming_violation"
	IssueDuplicateBlock       IssueCode = "duplicate_block"
	IssueFileTooLong          IssueCode = "file_too_long"
	IssueTooManyFunctions     IssueCode = "too_many_functions"
	IssueGodFunction          IssueCode = "god_function"
)

// Issue represents a single problem found in a source file
type Issue struct {
	Code     IssueCode         `json:"code" yaml:"code"`
	Severity Severity          `json:"severity" yaml:"severity"`
	FilePath string            `json:"file_path" yaml:"file_path"`
	Line     int               `json:"line,omitempty" yaml:"line,omitempty"`
	Params   map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// SourceUnit is one file's raw content plus identifying metadata. It is
// the unit of parallel work; the extractor fills Lines once during parsing
// and nothing mutates the unit afterwards.
type SourceUnit struct {
	Path     string
	Language Language
	Content  []byte

	// Lines is the total line count, set by the extractor
	Lines int
}

// FunctionRecord holds the structural facts extracted for one function
type FunctionRecord struct {
	Name             string   `json:"name" yaml:"name"`
	StartLine        int      `json:"start_line" yaml:"start_line"`
	EndLine          int      `json:"end_line" yaml:"end_line"`
	Parameters       int      `json:"parameters" yaml:"parameters"`
	Statements       int      `json:"statements" yaml:"statements"`
	Branches         int      `json:"branches" yaml:"branches"`
	NestingDepth     int      `json:"nesting_depth" yaml:"nesting_depth"`
	HasErrorHandling bool     `json:"has_error_handling" yaml:"has_error_handling"`
	RiskyOps         int      `json:"risky_ops" yaml:"risky_ops"`
	Identifiers      []string `json:"-" yaml:"-"`
}

// LineCount returns the number of lines the function spans
func (f FunctionRecord) LineCount() int {
	return f.EndLine - f.StartLine + 1
}

// Complexity returns the cyclomatic complexity proxy: decision points
// plus the baseline of 1 for the single entry path.
func (f FunctionRecord) Complexity() int {
	return f.Branches + 1
}

// ParseOutcome holds the structural facts extracted from one source file.
// A failed parse yields an outcome with zero functions and Failed set;
// extraction never panics past its boundary.
type ParseOutcome struct {
	Unit         *SourceUnit
	Functions    []FunctionRecord
	TotalLines   int
	CommentLines int
	BlankLines   int
	Failed       bool
	Diagnostic   string
}

// CodeLines returns the number of non-blank, non-comment lines
func (p *ParseOutcome) CodeLines() int {
	n := p.TotalLines - p.CommentLines - p.BlankLines
	if n < 0 {
		return 0
	}
	return n
}

// MetricScore is the result of one metric evaluator for one file.
// Value is always within [0, 1]; higher means worse.
type MetricScore struct {
	Name       string  `json:"name" yaml:"name"`
	Value      float64 `json:"value" yaml:"value"`
	Weight     float64 `json:"weight" yaml:"weight"`
	Applicable bool    `json:"applicable" yaml:"applicable"`
	Issues     []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// FileAssessment is the aggregated result for one file
type FileAssessment struct {
	FilePath string `json:"file_path" yaml:"file_path"`
	Language string `json:"language" yaml:"language"`
	Lines    int    `json:"lines" yaml:"lines"`

	// Score is the weighted composite on the 0-100+ axis (higher = worse)
	Score float64 `json:"score" yaml:"score"`

	// Assessed is false when no metric applied to this file (e.g. a failed
	// parse); such files are excluded from project score reduction.
	Assessed bool `json:"assessed" yaml:"assessed"`

	// Issues is sorted by severity descending, then line ascending, and
	// truncated to the configured per-file cap.
	Issues []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`

	// Breakdown maps metric name to its normalized [0,1] value
	Breakdown map[string]float64 `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`

	// IssueCounts reflects the untruncated totals per severity
	IssueCounts map[Severity]int `json:"issue_counts" yaml:"issue_counts"`
}

// TotalIssues returns the untruncated issue count across severities
func (f *FileAssessment) TotalIssues() int {
	n := 0
	for _, c := range f.IssueCounts {
		n += c
	}
	return n
}

// ProjectAssessment is the final result of one analysis run
type ProjectAssessment struct {
	TotalFiles    int     `json:"total_files" yaml:"total_files"`
	AnalyzedFiles int     `json:"analyzed_files" yaml:"analyzed_files"`
	TotalLines    int     `json:"total_lines" yaml:"total_lines"`
	Score         float64 `json:"score" yaml:"score"`

	Level QualityLevel `json:"level" yaml:"level"`

	// Files is ordered worst-first and truncated to the configured top count
	Files []FileAssessment `json:"files" yaml:"files"`

	IssueCounts map[Severity]int `json:"issue_counts" yaml:"issue_counts"`
}

// AnalyzeRequest carries everything the orchestrator needs for one run
type AnalyzeRequest struct {
	// Paths are files or directories to analyze
	Paths []string

	// Discovery options
	IncludePatterns  []string
	ExcludePatterns  []string
	SkipIndexFiles   bool
	RespectGitignore bool

	// Result shaping
	TopFiles         int
	MaxIssuesPerFile int

	// Worker pool size; 0 means hardware parallelism
	ConcurrencyLimit int

	// ConfigPath is an explicit configuration file, empty for discovery
	ConfigPath string
}

// AnalyzeResponse wraps the assessment with run metadata
type AnalyzeResponse struct {
	Assessment  ProjectAssessment `json:"assessment" yaml:"assessment"`
	Warnings    []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	GeneratedAt string            `json:"generated_at" yaml:"generated_at"`
	Version     string            `json:"version" yaml:"version"`
}

// AnalyzeService defines the core analysis entry point
type AnalyzeService interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
}

// SourceDiscovery resolves root paths plus patterns into candidate files.
// The core treats the returned list as given.
type SourceDiscovery interface {
	Discover(req AnalyzeRequest) ([]string, error)
}

// ProgressManager creates progress tasks for long-running operations
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}
