package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// ReportOptions control how an analysis response is rendered
type ReportOptions struct {
	// Format is terminal, markdown, or json
	Format string

	// Language is the report language tag (zh-CN, en-US)
	Language string

	// ShowBreakdown includes the per-metric table for each listed file
	ShowBreakdown bool
}

// ReportFormatterImpl renders analysis responses in the configured format
// and language. JSON output carries the symbolic codes untranslated so it
// stays machine-stable across report languages.
type ReportFormatterImpl struct{}

// NewReportFormatter creates the report formatter
func NewReportFormatter() *ReportFormatterImpl {
	return &ReportFormatterImpl{}
}

// Format renders one response
func (f *ReportFormatterImpl) Format(resp *domain.AnalyzeResponse, opts ReportOptions) (string, error) {
	switch opts.Format {
	case "json":
		return f.formatJSON(resp)
	case "markdown":
		return f.formatMarkdown(resp, opts), nil
	case "terminal", "":
		return f.formatTerminal(resp, opts), nil
	default:
		return "", domain.NewConfigError(fmt.Sprintf("unknown report format %q", opts.Format), nil)
	}
}

// formatJSON renders the raw response structure
func (f *ReportFormatterImpl) formatJSON(resp *domain.AnalyzeResponse) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", domain.NewInternalError("failed to marshal report", err)
	}
	return string(data) + "\n", nil
}

// formatTerminal renders the styled human report
func (f *ReportFormatterImpl) formatTerminal(resp *domain.AnalyzeResponse, opts ReportOptions) string {
	cat := catalogFor(opts.Language)
	a := &resp.Assessment

	var sb strings.Builder
	sb.WriteString(styleTitle.Render(cat.Text("report.title")) + "\n\n")

	if a.TotalFiles == 0 {
		sb.WriteString(styleMuted.Render(cat.Text("report.no_files")) + "\n")
		return sb.String()
	}

	sb.WriteString(scoreStyle(a.Score).Render(cat.scoreLine(a.Score, a.Level)) + "\n")
	sb.WriteString(fmt.Sprintf("%s: %d/%d    %s: %d    %s: %d\n\n",
		cat.Text("report.files"), a.AnalyzedFiles, a.TotalFiles,
		cat.Text("report.lines"), a.TotalLines,
		cat.Text("report.issues_total"), totalIssues(a)))

	if len(a.Files) > 0 {
		sb.WriteString(styleHeader.Render(cat.Text("report.worst")) + "\n")
		for i, file := range a.Files {
			sb.WriteString(fmt.Sprintf("%2d. %s  %s\n",
				i+1,
				scoreStyle(file.Score).Render(fmt.Sprintf("%6.2f", file.Score)),
				file.FilePath))

			if opts.ShowBreakdown && len(file.Breakdown) > 0 {
				for _, name := range sortedKeys(file.Breakdown) {
					sb.WriteString(styleMuted.Render(fmt.Sprintf("      %-12s %.2f",
						cat.MetricLabel(name), file.Breakdown[name])) + "\n")
				}
			}

			for _, issue := range file.Issues {
				sb.WriteString(fmt.Sprintf("      %s %s\n",
					severityStyle(issue.Severity).Render("["+cat.severityLabel(issue.Severity)+"]"),
					issueLine(cat, issue)))
			}
		}
		sb.WriteString("\n")
	}

	if len(resp.Warnings) > 0 {
		sb.WriteString(styleWarning.Render(cat.Text("report.warnings")) + "\n")
		for _, w := range resp.Warnings {
			sb.WriteString("  " + styleMuted.Render(w) + "\n")
		}
	}

	return sb.String()
}

// formatMarkdown renders the plain markdown report
func (f *ReportFormatterImpl) formatMarkdown(resp *domain.AnalyzeResponse, opts ReportOptions) string {
	cat := catalogFor(opts.Language)
	a := &resp.Assessment

	var sb strings.Builder
	sb.WriteString("# " + cat.Text("report.title") + "\n\n")

	if a.TotalFiles == 0 {
		sb.WriteString(cat.Text("report.no_files") + "\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("**%s**\n\n", cat.scoreLine(a.Score, a.Level)))
	sb.WriteString(fmt.Sprintf("- %s: %d/%d\n", cat.Text("report.files"), a.AnalyzedFiles, a.TotalFiles))
	sb.WriteString(fmt.Sprintf("- %s: %d\n", cat.Text("report.lines"), a.TotalLines))
	sb.WriteString(fmt.Sprintf("- %s: %d\n\n", cat.Text("report.issues_total"), totalIssues(a)))

	if len(a.Files) > 0 {
		sb.WriteString("## " + cat.Text("report.worst") + "\n\n")
		for i, file := range a.Files {
			sb.WriteString(fmt.Sprintf("### %d. `%s` — %.2f (%s)\n\n",
				i+1, file.FilePath, file.Score, cat.LevelLabel(levelOrUnknown(file.Score))))

			if opts.ShowBreakdown && len(file.Breakdown) > 0 {
				sb.WriteString("| " + cat.Text("report.breakdown") + " | |\n|---|---|\n")
				for _, name := range sortedKeys(file.Breakdown) {
					sb.WriteString(fmt.Sprintf("| %s | %.2f |\n", cat.MetricLabel(name), file.Breakdown[name]))
				}
				sb.WriteString("\n")
			}

			for _, issue := range file.Issues {
				sb.WriteString(fmt.Sprintf("- **%s** %s\n", cat.severityLabel(issue.Severity), issueLine(cat, issue)))
			}
			if len(file.Issues) > 0 {
				sb.WriteString("\n")
			}
		}
	}

	if len(resp.Warnings) > 0 {
		sb.WriteString("## " + cat.Text("report.warnings") + "\n\n")
		for _, w := range resp.Warnings {
			sb.WriteString("- " + w + "\n")
		}
	}

	return sb.String()
}

// issueLine renders one issue with its location
func issueLine(cat *catalog, issue domain.Issue) string {
	msg := cat.IssueMessage(issue)
	if issue.Line > 0 {
		return fmt.Sprintf("L%d: %s", issue.Line, msg)
	}
	return msg
}

// severityStyle maps a severity onto a terminal style
func severityStyle(s domain.Severity) lipgloss.Style {
	switch s {
	case domain.SeverityCritical:
		return styleCritical
	case domain.SeverityWarning:
		return styleWarning
	default:
		return styleMuted
	}
}

// totalIssues sums the severity-partitioned project counts
func totalIssues(a *domain.ProjectAssessment) int {
	n := 0
	for _, c := range a.IssueCounts {
		n += c
	}
	return n
}

// levelOrUnknown maps a file score to its band, swallowing the impossible
// lookup failure for display purposes
func levelOrUnknown(score float64) domain.QualityLevel {
	level, err := domain.LevelForScore(score)
	if err != nil {
		return domain.QualityUltimate
	}
	return level
}

// sortedKeys returns map keys in deterministic order
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
