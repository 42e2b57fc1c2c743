package metrics

import (
	"strconv"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// Function length issue thresholds
const (
	lengthWarningStatements  = 50
	lengthCriticalStatements = 120
)

// FunctionLengthMetric scores function size by statement count, normalized
// against a fixed saturation point.
type FunctionLengthMetric struct{}

// NewFunctionLengthMetric creates the function-length evaluator
func NewFunctionLengthMetric() *FunctionLengthMetric {
	return &FunctionLengthMetric{}
}

// Name returns the metric name
func (m *FunctionLengthMetric) Name() string { return constants.MetricFunctionLength }

// Weight returns the metric weight
func (m *FunctionLengthMetric) Weight() float64 { return constants.WeightFunctionLength }

// Supports reports language applicability
func (m *FunctionLengthMetric) Supports(lang domain.Language) bool { return supportsAll(lang) }

// Evaluate scores the outcome
func (m *FunctionLengthMetric) Evaluate(outcome *domain.ParseOutcome) domain.MetricScore {
	if !m.Supports(outcome.Unit.Language) {
		return inapplicable(m.Name(), m.Weight())
	}

	score := domain.MetricScore{Name: m.Name(), Weight: m.Weight(), Applicable: true}
	if len(outcome.Functions) == 0 {
		return score
	}

	value := 0.0
	for _, fn := range outcome.Functions {
		value += clamp(float64(fn.Statements) / constants.FunctionLengthSaturation)
		score.Issues = append(score.Issues, m.functionIssues(outcome.Unit.Path, fn)...)
	}

	score.Value = clamp(value / float64(len(outcome.Functions)))
	return score
}

// functionIssues flags long functions and oversized parameter lists
func (m *FunctionLengthMetric) functionIssues(path string, fn domain.FunctionRecord) []domain.Issue {
	var issues []domain.Issue

	if fn.Statements > lengthWarningStatements {
		severity := domain.SeverityWarning
		if fn.Statements > lengthCriticalStatements {
			severity = domain.SeverityCritical
		}
		issues = append(issues, domain.Issue{
			Code:     domain.IssueLongFunction,
			Severity: severity,
			FilePath: path,
			Line:     fn.StartLine,
			Params: map[string]string{
				"function":   fn.Name,
				"statements": strconv.Itoa(fn.Statements),
			},
		})
	}

	if fn.Parameters > constants.ParameterWarningThreshold {
		severity := domain.SeverityWarning
		if fn.Parameters > constants.ParameterCriticalThreshold {
			severity = domain.SeverityCritical
		}
		issues = append(issues, domain.Issue{
			Code:     domain.IssueTooManyParams,
			Severity: severity,
			FilePath: path,
			Line:     fn.StartLine,
			Params: map[string]string{
				"function":   fn.Name,
				"parameters": strconv.Itoa(fn.Parameters),
			},
		})
	}

	return issues
}
