// Package metrics implements the quality-dimension evaluators. Every
// evaluator is a pure function from ParseOutcome to MetricScore and holds
// no state across files, so worker assignment cannot affect output.
package metrics

import (
	"github.com/Yzy888666/fuckucodepy/domain"
)

// Evaluator scores one quality dimension for one file
type Evaluator interface {
	// Name identifies the metric in breakdowns and configuration
	Name() string

	// Weight is the metric's fixed share of the composite score
	Weight() float64

	// Supports reports whether the metric applies to the language
	Supports(lang domain.Language) bool

	// Evaluate scores the outcome. The returned value is within [0,1];
	// Applicable is false when the file's language is unsupported.
	Evaluate(outcome *domain.ParseOutcome) domain.MetricScore
}

// DefaultEvaluators returns the per-file evaluators in their fixed order.
// Duplication is scored by the project-level pass, not listed here.
func DefaultEvaluators() []Evaluator {
	return []Evaluator{
		NewComplexityMetric(),
		NewFunctionLengthMetric(),
		NewCommentRatioMetric(),
		NewErrorHandlingMetric(),
		NewNamingConventionMetric(),
		NewStructureMetric(),
	}
}

// TotalWeight sums the weights of the given evaluators. The duplication
// pass carries the remaining share of the composite, so the per-file set
// alone sums to less than 1.
func TotalWeight(evaluators []Evaluator) float64 {
	total := 0.0
	for _, e := range evaluators {
		total += e.Weight()
	}
	return total
}

// clamp bounds v to [0, 1]
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// supportsAll is the common case: a metric applying to every language
func supportsAll(lang domain.Language) bool {
	return lang.Supported()
}

// inapplicable builds the score returned for unsupported languages
func inapplicable(name string, weight float64) domain.MetricScore {
	return domain.MetricScore{Name: name, Weight: weight, Applicable: false}
}
