package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "fuck-u-code"

	// ConfigFileName is the default config file name
	ConfigFileName = "fuckucode.yaml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "FUCKUCODE"
)

// Metric name constants
const (
	MetricComplexity       = "complexity"
	MetricFunctionLength   = "function_length"
	MetricCommentRatio     = "comment_ratio"
	MetricErrorHandling    = "error_handling"
	MetricNamingConvention = "naming_convention"
	MetricDuplication      = "code_duplication"
	MetricStructure        = "structure_analysis"
)

// Default metric weights. They sum to 1 over the full metric set and are
// renormalized per file over the applicable subset.
const (
	WeightComplexity       = 0.30
	WeightFunctionLength   = 0.20
	WeightCommentRatio     = 0.15
	WeightErrorHandling    = 0.15
	WeightNamingConvention = 0.10
	WeightDuplication      = 0.05
	WeightStructure        = 0.05
)

// Metric saturation points and thresholds
const (
	// ComplexitySaturation is the decision-point + nesting sum at which a
	// function's complexity score saturates at 1 (10 branches + 4 nesting)
	ComplexitySaturation = 14

	// FunctionLengthSaturation is the statement count at which the
	// function-length score saturates at 1
	FunctionLengthSaturation = 50

	// CommentRatioFloor is the comment ratio below which score rises;
	// more comments than this give no further improvement
	CommentRatioFloor = 0.15

	// SmallFileLineExemption exempts short files from comment-ratio and
	// structure scoring; there is nothing to document or split yet
	SmallFileLineExemption = 30

	// ParameterWarningThreshold and ParameterCriticalThreshold bound
	// acceptable parameter counts
	ParameterWarningThreshold  = 5
	ParameterCriticalThreshold = 8

	// DuplicationShingleSize is the window, in normalized lines, used by
	// the line-hash duplication pass
	DuplicationShingleSize = 5

	// Structure heuristic saturation points
	FileLengthSaturation    = 500
	FunctionCountSaturation = 30
	GodFunctionMinLines     = 100
	GodFunctionFileShare    = 0.6
)

// Orchestrator defaults
const (
	// DefaultTopFiles is the number of worst files kept in the ranking
	DefaultTopFiles = 10

	// DefaultMaxIssuesPerFile caps issues carried per file assessment
	DefaultMaxIssuesPerFile = 5

	// MaxConcurrency caps the worker pool regardless of configuration
	MaxConcurrency = 16
)

// Report language constants
const (
	ReportLangZH = "zh-CN"
	ReportLangEN = "en-US"
)
