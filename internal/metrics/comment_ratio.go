package metrics

import (
	"fmt"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// CommentRatioMetric scores documentation coverage. The relationship is
// inverse: fewer comment lines per total line means a higher (worse)
// score, with no further credit above the configured floor. Files shorter
// than the small-file exemption score zero; there is nothing to document.
type CommentRatioMetric struct{}

// NewCommentRatioMetric creates the comment-ratio evaluator
func NewCommentRatioMetric() *CommentRatioMetric {
	return &CommentRatioMetric{}
}

// Name returns the metric name
func (m *CommentRatioMetric) Name() string { return constants.MetricCommentRatio }

// Weight returns the metric weight
func (m *CommentRatioMetric) Weight() float64 { return constants.WeightCommentRatio }

// Supports reports language applicability
func (m *CommentRatioMetric) Supports(lang domain.Language) bool { return supportsAll(lang) }

// Evaluate scores the outcome
func (m *CommentRatioMetric) Evaluate(outcome *domain.ParseOutcome) domain.MetricScore {
	if !m.Supports(outcome.Unit.Language) {
		return inapplicable(m.Name(), m.Weight())
	}

	score := domain.MetricScore{Name: m.Name(), Weight: m.Weight(), Applicable: true}
	if outcome.TotalLines < constants.SmallFileLineExemption {
		return score
	}

	ratio := float64(outcome.CommentLines) / float64(outcome.TotalLines)
	score.Value = clamp(1 - ratio/constants.CommentRatioFloor)

	if score.Value > 0.66 {
		score.Issues = append(score.Issues, domain.Issue{
			Code:     domain.IssueLowCommentRatio,
			Severity: domain.SeverityWarning,
			FilePath: outcome.Unit.Path,
			Params: map[string]string{
				"ratio": fmt.Sprintf("%.2f", ratio),
			},
		})
	} else if score.Value > 0.33 {
		score.Issues = append(score.Issues, domain.Issue{
			Code:     domain.IssueLowCommentRatio,
			Severity: domain.SeverityInfo,
			FilePath: outcome.Unit.Path,
			Params: map[string]string{
				"ratio": fmt.Sprintf("%.2f", ratio),
			},
		})
	}

	return score
}
