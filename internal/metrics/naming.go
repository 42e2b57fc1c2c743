package metrics

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// namingExampleCap bounds how many violating identifiers get an issue
const namingExampleCap = 10

// namingRatioWarning is the violation ratio treated as a warning
const namingRatioWarning = 0.3

// snakeCaseLanguages expect snake_case identifiers; everything else
// supported expects camelCase/PascalCase.
var snakeCaseLanguages = map[domain.Language]bool{
	domain.LangPython: true,
	domain.LangRust:   true,
	domain.LangC:      true,
	domain.LangCPP:    true,
}

// NamingConventionMetric scores identifier casing consistency against the
// language-idiomatic convention. SCREAMING_SNAKE constants, underscore
// prefixes, and short names are never violations.
type NamingConventionMetric struct{}

// NewNamingConventionMetric creates the naming evaluator
func NewNamingConventionMetric() *NamingConventionMetric {
	return &NamingConventionMetric{}
}

// Name returns the metric name
func (m *NamingConventionMetric) Name() string { return constants.MetricNamingConvention }

// Weight returns the metric weight
func (m *NamingConventionMetric) Weight() float64 { return constants.WeightNamingConvention }

// Supports reports language applicability
func (m *NamingConventionMetric) Supports(lang domain.Language) bool { return supportsAll(lang) }

// Evaluate scores the outcome
func (m *NamingConventionMetric) Evaluate(outcome *domain.ParseOutcome) domain.MetricScore {
	if !m.Supports(outcome.Unit.Language) {
		return inapplicable(m.Name(), m.Weight())
	}

	score := domain.MetricScore{Name: m.Name(), Weight: m.Weight(), Applicable: true}
	snake := snakeCaseLanguages[outcome.Unit.Language]

	total := 0
	violations := 0
	seen := make(map[string]bool)

	for _, fn := range outcome.Functions {
		for _, ident := range fn.Identifiers {
			if exemptIdentifier(ident) {
				continue
			}
			total++
			if !violates(ident, snake) {
				continue
			}
			violations++
			if !seen[ident] && len(seen) < namingExampleCap {
				seen[ident] = true
				score.Issues = append(score.Issues, domain.Issue{
					Code:     domain.IssueNamingViolation,
					Severity: domain.SeverityInfo,
					FilePath: outcome.Unit.Path,
					Line:     fn.StartLine,
					Params: map[string]string{
						"identifier": ident,
						"expected":   expectedStyle(snake),
					},
				})
			}
		}
	}

	if total == 0 {
		return score
	}

	score.Value = clamp(float64(violations) / float64(total))
	if score.Value > namingRatioWarning {
		for i := range score.Issues {
			score.Issues[i].Severity = domain.SeverityWarning
		}
		score.Issues = append(score.Issues, domain.Issue{
			Code:     domain.IssueNamingViolation,
			Severity: domain.SeverityWarning,
			FilePath: outcome.Unit.Path,
			Params: map[string]string{
				"ratio": fmt.Sprintf("%.2f", score.Value),
			},
		})
	}
	return score
}

// exemptIdentifier filters names that carry no convention signal
func exemptIdentifier(ident string) bool {
	trimmed := strings.TrimLeft(ident, "_")
	if len(trimmed) <= 2 {
		return true
	}
	return isScreamingSnake(trimmed)
}

// violates checks one identifier against the expected convention
func violates(ident string, snake bool) bool {
	name := strings.TrimLeft(ident, "_")
	if snake {
		// camelCase in a snake_case language: starts lowercase but
		// contains an uppercase rune. PascalCase type names pass.
		if name == "" || !unicode.IsLower(rune(name[0])) {
			return false
		}
		return strings.IndexFunc(name, unicode.IsUpper) >= 0
	}
	// snake_case in a camelCase language
	return strings.Contains(name, "_")
}

// isScreamingSnake reports whether the name is an ALL_CAPS constant
func isScreamingSnake(name string) bool {
	hasLetter := false
	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case r == '_' || unicode.IsDigit(r):
		default:
			return false
		}
	}
	return hasLetter
}

// expectedStyle names the convention for issue parameters
func expectedStyle(snake bool) string {
	if snake {
		return "snake_case"
	}
	return "camelCase"
}
