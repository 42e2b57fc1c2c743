package metrics

import (
	"strconv"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// Complexity issue thresholds (cyclomatic complexity, including baseline)
const (
	complexityWarning  = 10
	complexityCritical = 20
	nestingWarning     = 4
)

// ComplexityMetric scores control-flow complexity. Each function's decision
// points plus nesting depth are normalized against a fixed saturation point;
// the file score is the function-length-share weighted mean, so one huge
// tangled function dominates many small clean ones.
type ComplexityMetric struct{}

// NewComplexityMetric creates the complexity evaluator
func NewComplexityMetric() *ComplexityMetric {
	return &ComplexityMetric{}
}

// Name returns the metric name
func (m *ComplexityMetric) Name() string { return constants.MetricComplexity }

// Weight returns the metric weight
func (m *ComplexityMetric) Weight() float64 { return constants.WeightComplexity }

// Supports reports language applicability
func (m *ComplexityMetric) Supports(lang domain.Language) bool { return supportsAll(lang) }

// Evaluate scores the outcome
func (m *ComplexityMetric) Evaluate(outcome *domain.ParseOutcome) domain.MetricScore {
	if !m.Supports(outcome.Unit.Language) {
		return inapplicable(m.Name(), m.Weight())
	}

	score := domain.MetricScore{Name: m.Name(), Weight: m.Weight(), Applicable: true}
	if len(outcome.Functions) == 0 {
		return score
	}

	totalLines := 0
	for _, fn := range outcome.Functions {
		totalLines += fn.LineCount()
	}

	value := 0.0
	for _, fn := range outcome.Functions {
		raw := float64(fn.Branches + fn.NestingDepth)
		norm := clamp(raw / constants.ComplexitySaturation)

		share := 1.0 / float64(len(outcome.Functions))
		if totalLines > 0 {
			share = float64(fn.LineCount()) / float64(totalLines)
		}
		value += norm * share

		score.Issues = append(score.Issues, m.functionIssues(outcome.Unit.Path, fn)...)
	}

	score.Value = clamp(value)
	return score
}

// functionIssues flags overly complex or deeply nested functions
func (m *ComplexityMetric) functionIssues(path string, fn domain.FunctionRecord) []domain.Issue {
	var issues []domain.Issue

	if c := fn.Complexity(); c > complexityWarning {
		severity := domain.SeverityWarning
		if c > complexityCritical {
			severity = domain.SeverityCritical
		}
		issues = append(issues, domain.Issue{
			Code:     domain.IssueHighComplexity,
			Severity: severity,
			FilePath: path,
			Line:     fn.StartLine,
			Params: map[string]string{
				"function":   fn.Name,
				"complexity": strconv.Itoa(c),
			},
		})
	}

	if fn.NestingDepth >= nestingWarning {
		issues = append(issues, domain.Issue{
			Code:     domain.IssueDeepNesting,
			Severity: domain.SeverityWarning,
			FilePath: path,
			Line:     fn.StartLine,
			Params: map[string]string{
				"function": fn.Name,
				"depth":    strconv.Itoa(fn.NestingDepth),
			},
		})
	}

	return issues
}
