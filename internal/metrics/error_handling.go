package metrics

import (
	"strconv"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// riskyOpsWarning is the risky-operation count above which an unhandled
// function is flagged as a warning rather than info
const riskyOpsWarning = 3

// ErrorHandlingMetric scores how much failure-prone code runs without a
// local handling construct. Risky operations are divisions, index accesses,
// and calls to I/O-looking functions; the score is the fraction of risky
// operations living in functions without any handling construct.
//
// C has no handler construct at the language level, so the metric is
// inapplicable there and its weight is renormalized away.
type ErrorHandlingMetric struct{}

// NewErrorHandlingMetric creates the error-handling evaluator
func NewErrorHandlingMetric() *ErrorHandlingMetric {
	return &ErrorHandlingMetric{}
}

// Name returns the metric name
func (m *ErrorHandlingMetric) Name() string { return constants.MetricErrorHandling }

// Weight returns the metric weight
func (m *ErrorHandlingMetric) Weight() float64 { return constants.WeightErrorHandling }

// Supports reports language applicability
func (m *ErrorHandlingMetric) Supports(lang domain.Language) bool {
	return lang.Supported() && lang != domain.LangC
}

// Evaluate scores the outcome
func (m *ErrorHandlingMetric) Evaluate(outcome *domain.ParseOutcome) domain.MetricScore {
	if !m.Supports(outcome.Unit.Language) {
		return inapplicable(m.Name(), m.Weight())
	}

	score := domain.MetricScore{Name: m.Name(), Weight: m.Weight(), Applicable: true}

	totalRisky := 0
	uncovered := 0
	for _, fn := range outcome.Functions {
		totalRisky += fn.RiskyOps
		if fn.RiskyOps == 0 || fn.HasErrorHandling {
			continue
		}
		uncovered += fn.RiskyOps

		severity := domain.SeverityInfo
		if fn.RiskyOps >= riskyOpsWarning {
			severity = domain.SeverityWarning
		}
		score.Issues = append(score.Issues, domain.Issue{
			Code:     domain.IssueMissingErrorHandling,
			Severity: severity,
			FilePath: outcome.Unit.Path,
			Line:     fn.StartLine,
			Params: map[string]string{
				"function":  fn.Name,
				"risky_ops": strconv.Itoa(fn.RiskyOps),
			},
		})
	}

	if totalRisky > 0 {
		score.Value = clamp(float64(uncovered) / float64(totalRisky))
	}
	return score
}
