package metrics

import (
	"strconv"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// fileLengthCritical is the line count escalating FileTooLong to critical
const fileLengthCritical = 1000

// Structure heuristic shares of the metric value
const (
	structureFileLengthShare    = 0.4
	structureFunctionCountShare = 0.3
	structureGodFunctionShare   = 0.3
)

// StructureMetric scores file-level shape: overall length, function count,
// and god functions dominating a file. Files under the small-file
// exemption score zero.
type StructureMetric struct{}

// NewStructureMetric creates the structure evaluator
func NewStructureMetric() *StructureMetric {
	return &StructureMetric{}
}

// Name returns the metric name
func (m *StructureMetric) Name() string { return constants.MetricStructure }

// Weight returns the metric weight
func (m *StructureMetric) Weight() float64 { return constants.WeightStructure }

// Supports reports language applicability
func (m *StructureMetric) Supports(lang domain.Language) bool { return supportsAll(lang) }

// Evaluate scores the outcome
func (m *StructureMetric) Evaluate(outcome *domain.ParseOutcome) domain.MetricScore {
	if !m.Supports(outcome.Unit.Language) {
		return inapplicable(m.Name(), m.Weight())
	}

	score := domain.MetricScore{Name: m.Name(), Weight: m.Weight(), Applicable: true}
	if outcome.TotalLines < constants.SmallFileLineExemption {
		return score
	}

	lengthPart := clamp(float64(outcome.TotalLines)/constants.FileLengthSaturation) * structureFileLengthShare
	countPart := clamp(float64(len(outcome.Functions))/constants.FunctionCountSaturation) * structureFunctionCountShare

	godPart := 0.0
	for _, fn := range outcome.Functions {
		lines := fn.LineCount()
		if lines > constants.GodFunctionMinLines &&
			float64(lines)/float64(outcome.TotalLines) > constants.GodFunctionFileShare {
			godPart = structureGodFunctionShare
			score.Issues = append(score.Issues, domain.Issue{
				Code:     domain.IssueGodFunction,
				Severity: domain.SeverityWarning,
				FilePath: outcome.Unit.Path,
				Line:     fn.StartLine,
				Params: map[string]string{
					"function": fn.Name,
					"lines":    strconv.Itoa(lines),
				},
			})
			break
		}
	}

	if outcome.TotalLines > constants.FileLengthSaturation {
		severity := domain.SeverityWarning
		if outcome.TotalLines > fileLengthCritical {
			severity = domain.SeverityCritical
		}
		score.Issues = append(score.Issues, domain.Issue{
			Code:     domain.IssueFileTooLong,
			Severity: severity,
			FilePath: outcome.Unit.Path,
			Params: map[string]string{
				"lines": strconv.Itoa(outcome.TotalLines),
			},
		})
	}

	if len(outcome.Functions) > constants.FunctionCountSaturation {
		score.Issues = append(score.Issues, domain.Issue{
			Code:     domain.IssueTooManyFunctions,
			Severity: domain.SeverityInfo,
			FilePath: outcome.Unit.Path,
			Params: map[string]string{
				"functions": strconv.Itoa(len(outcome.Functions)),
			},
		})
	}

	score.Value = clamp(lengthPart + countPart + godPart)
	return score
}
