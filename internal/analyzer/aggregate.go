// Package analyzer combines metric scores into file and project
// assessments. Both aggregations are deterministic reductions; any weight
// or band invariant violation aborts the run instead of reporting a
// silently wrong score.
package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// weightTolerance bounds the acceptable drift of a renormalized weight sum
const weightTolerance = 1e-3

// AggregateFile combines all applicable metric scores for one file into a
// FileAssessment. Weights of inapplicable metrics are excluded and the
// remaining weights renormalized to sum to 1; the composite score is the
// weighted mean scaled to the 0-100+ axis.
//
// Issues from all metrics are merged, sorted by severity descending then
// line ascending, and truncated to maxIssues (0 = no cap). The per-severity
// counts always reflect the untruncated totals.
func AggregateFile(outcome *domain.ParseOutcome, scores []domain.MetricScore, maxIssues int) (domain.FileAssessment, error) {
	assessment := domain.FileAssessment{
		FilePath:    outcome.Unit.Path,
		Language:    string(outcome.Unit.Language),
		Lines:       outcome.TotalLines,
		Breakdown:   make(map[string]float64),
		IssueCounts: make(map[domain.Severity]int),
	}

	var applicable []domain.MetricScore
	totalWeight := 0.0
	for _, score := range scores {
		if !score.Applicable {
			continue
		}
		if score.Value < 0 || score.Value > 1 {
			return assessment, domain.NewInternalError(
				fmt.Sprintf("metric %q produced value %v outside [0,1]", score.Name, score.Value), nil)
		}
		applicable = append(applicable, score)
		totalWeight += score.Weight
	}

	var issues []domain.Issue
	for _, score := range applicable {
		issues = append(issues, score.Issues...)
	}

	if len(applicable) > 0 {
		if totalWeight <= 0 {
			return assessment, domain.NewInternalError("applicable metric weights sum to zero", nil)
		}

		composite := 0.0
		normalizedSum := 0.0
		for _, score := range applicable {
			w := score.Weight / totalWeight
			normalizedSum += w
			composite += w * score.Value
			assessment.Breakdown[score.Name] = score.Value
		}

		if math.Abs(normalizedSum-1) > weightTolerance {
			return assessment, domain.NewInternalError(
				fmt.Sprintf("renormalized weights sum to %v", normalizedSum), nil)
		}

		assessment.Assessed = true
		assessment.Score = composite * 100
	}

	sortIssues(issues)
	for _, issue := range issues {
		assessment.IssueCounts[issue.Severity]++
	}
	if maxIssues > 0 && len(issues) > maxIssues {
		issues = issues[:maxIssues]
	}
	assessment.Issues = issues

	return assessment, nil
}

// AggregateProject reduces all file assessments into the project result.
// The overall score is the lines-of-code-weighted mean over assessed files,
// so one catastrophic large file is not diluted by many trivial ones.
// Callers pass assessments sorted by path; completion order never matters.
func AggregateProject(assessments []domain.FileAssessment, totalFiles, topFiles int) (domain.ProjectAssessment, error) {
	project := domain.ProjectAssessment{
		TotalFiles:  totalFiles,
		IssueCounts: make(map[domain.Severity]int),
	}

	weightedSum := 0.0
	weightedLines := 0
	for _, fa := range assessments {
		project.TotalLines += fa.Lines
		for severity, count := range fa.IssueCounts {
			project.IssueCounts[severity] += count
		}
		if !fa.Assessed {
			continue
		}
		project.AnalyzedFiles++
		lines := fa.Lines
		if lines < 1 {
			lines = 1
		}
		weightedSum += fa.Score * float64(lines)
		weightedLines += lines
	}

	if weightedLines > 0 {
		project.Score = weightedSum / float64(weightedLines)
	}

	level, err := domain.LevelForScore(project.Score)
	if err != nil {
		return project, err
	}
	project.Level = level

	project.Files = rankWorstFirst(assessments, topFiles)
	return project, nil
}

// rankWorstFirst sorts files by composite score descending, breaking ties
// by issue count descending, then by path for full determinism, and
// truncates to the configured top count (0 = keep all).
func rankWorstFirst(assessments []domain.FileAssessment, topFiles int) []domain.FileAssessment {
	ranked := make([]domain.FileAssessment, len(assessments))
	copy(ranked, assessments)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ti, tj := ranked[i].TotalIssues(), ranked[j].TotalIssues(); ti != tj {
			return ti > tj
		}
		return ranked[i].FilePath < ranked[j].FilePath
	})

	if topFiles > 0 && len(ranked) > topFiles {
		ranked = ranked[:topFiles]
	}
	return ranked
}

// sortIssues orders by severity descending, then line ascending, then code
// for a stable tail
func sortIssues(issues []domain.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if ri, rj := issues[i].Severity.Rank(), issues[j].Severity.Rank(); ri != rj {
			return ri > rj
		}
		if issues[i].Line != issues[j].Line {
			return issues[i].Line < issues[j].Line
		}
		return issues[i].Code < issues[j].Code
	})
}
