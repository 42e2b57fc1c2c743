package analyzer

import (
	"math"
	"testing"

	"github.com/Yzy888666/fuckucodepy/domain"
)

func outcome(path string, lang domain.Language, lines int) *domain.ParseOutcome {
	return &domain.ParseOutcome{
		Unit:       &domain.SourceUnit{Path: path, Language: lang},
		TotalLines: lines,
	}
}

func score(name string, weight, value float64, issues ...domain.Issue) domain.MetricScore {
	return domain.MetricScore{Name: name, Weight: weight, Value: value, Applicable: true, Issues: issues}
}

func TestAggregateFile_WeightedComposite(t *testing.T) {
	scores := []domain.MetricScore{
		score("complexity", 0.5, 0.8),
		score("length", 0.5, 0.2),
	}

	fa, err := AggregateFile(outcome("a.go", domain.LangGo, 100), scores, 0)
	if err != nil {
		t.Fatalf("AggregateFile: %v", err)
	}
	if !fa.Assessed {
		t.Fatal("File with applicable metrics should be assessed")
	}
	if math.Abs(fa.Score-50) > 1e-9 {
		t.Errorf("Score = %v, want 50", fa.Score)
	}
	if len(fa.Breakdown) != 2 {
		t.Errorf("Breakdown should list both metrics, got %v", fa.Breakdown)
	}
}

func TestAggregateFile_RenormalizesInapplicableWeights(t *testing.T) {
	scores := []domain.MetricScore{
		score("complexity", 0.30, 1.0),
		score("length", 0.20, 1.0),
		{Name: "error_handling", Weight: 0.15, Applicable: false},
		score("naming", 0.10, 0.0),
	}

	fa, err := AggregateFile(outcome("lib.c", domain.LangC, 100), scores, 0)
	if err != nil {
		t.Fatalf("AggregateFile: %v", err)
	}

	// 0.30 + 0.20 over a renormalized base of 0.60
	want := (0.30 + 0.20) / 0.60 * 100
	if math.Abs(fa.Score-want) > 1e-6 {
		t.Errorf("Score = %v, want %v", fa.Score, want)
	}
	if _, ok := fa.Breakdown["error_handling"]; ok {
		t.Error("Inapplicable metric must not appear in the breakdown")
	}
}

func TestAggregateFile_NoApplicableMetrics(t *testing.T) {
	scores := []domain.MetricScore{
		{Name: "complexity", Weight: 0.3, Applicable: false},
	}

	fa, err := AggregateFile(outcome("odd.bin", domain.LangUnsupported, 10), scores, 0)
	if err != nil {
		t.Fatalf("AggregateFile: %v", err)
	}
	if fa.Assessed {
		t.Error("File without applicable metrics must not be assessed")
	}
	if fa.Score != 0 {
		t.Errorf("Unassessed score should be 0, got %v", fa.Score)
	}
}

func TestAggregateFile_RejectsOutOfRangeValue(t *testing.T) {
	scores := []domain.MetricScore{score("complexity", 0.5, 1.3)}
	_, err := AggregateFile(outcome("a.go", domain.LangGo, 10), scores, 0)
	if err == nil {
		t.Fatal("Expected internal error for value outside [0,1]")
	}
	if !domain.IsCategory(err, domain.ErrInternal) {
		t.Errorf("Expected internal category, got %v", err)
	}
}

func TestAggregateFile_IssueOrderingAndTruncation(t *testing.T) {
	issues := []domain.Issue{
		{Code: "c", Severity: domain.SeverityInfo, Line: 1},
		{Code: "a", Severity: domain.SeverityCritical, Line: 9},
		{Code: "b", Severity: domain.SeverityWarning, Line: 5},
		{Code: "d", Severity: domain.SeverityCritical, Line: 2},
	}
	scores := []domain.MetricScore{score("complexity", 0.5, 0.5, issues...)}

	fa, err := AggregateFile(outcome("a.go", domain.LangGo, 10), scores, 3)
	if err != nil {
		t.Fatalf("AggregateFile: %v", err)
	}

	if len(fa.Issues) != 3 {
		t.Fatalf("Expected 3 issues after truncation, got %d", len(fa.Issues))
	}
	// Critical first (ascending line within), then warning; info truncated
	if fa.Issues[0].Code != "d" || fa.Issues[1].Code != "a" || fa.Issues[2].Code != "b" {
		t.Errorf("Wrong issue order: %v", fa.Issues)
	}

	// Counts reflect the untruncated totals
	if fa.IssueCounts[domain.SeverityInfo] != 1 {
		t.Errorf("Truncation must not change counts, got %v", fa.IssueCounts)
	}
	if fa.TotalIssues() != 4 {
		t.Errorf("TotalIssues = %d, want 4", fa.TotalIssues())
	}
}

func TestAggregateProject_LinesWeightedMean(t *testing.T) {
	assessments := []domain.FileAssessment{
		{FilePath: "big.go", Lines: 900, Score: 80, Assessed: true},
		{FilePath: "small.go", Lines: 100, Score: 10, Assessed: true},
	}

	project, err := AggregateProject(assessments, 2, 0)
	if err != nil {
		t.Fatalf("AggregateProject: %v", err)
	}

	want := (80.0*900 + 10.0*100) / 1000
	if math.Abs(project.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", project.Score, want)
	}
	if project.AnalyzedFiles != 2 || project.TotalFiles != 2 {
		t.Errorf("File counts wrong: %+v", project)
	}
	if project.Level == "" {
		t.Error("Project must carry a quality level")
	}
}

func TestAggregateProject_UnassessedExcludedFromScore(t *testing.T) {
	assessments := []domain.FileAssessment{
		{FilePath: "ok.go", Lines: 100, Score: 20, Assessed: true},
		{FilePath: "broken.go", Lines: 5000, Assessed: false},
	}

	project, err := AggregateProject(assessments, 2, 0)
	if err != nil {
		t.Fatalf("AggregateProject: %v", err)
	}
	if math.Abs(project.Score-20) > 1e-9 {
		t.Errorf("Unassessed files must not drag the mean, got %v", project.Score)
	}
	if project.AnalyzedFiles != 1 {
		t.Errorf("AnalyzedFiles = %d, want 1", project.AnalyzedFiles)
	}
	if project.TotalLines != 5100 {
		t.Errorf("TotalLines should include unassessed files, got %d", project.TotalLines)
	}
}

func TestAggregateProject_EmptyRun(t *testing.T) {
	project, err := AggregateProject(nil, 0, 10)
	if err != nil {
		t.Fatalf("AggregateProject: %v", err)
	}
	if project.Score != 0 {
		t.Errorf("Empty run should score 0, got %v", project.Score)
	}
	if project.Level != domain.QualityExcellent {
		t.Errorf("Score 0 maps to excellent, got %s", project.Level)
	}
}

func TestAggregateProject_WorstFirstRanking(t *testing.T) {
	assessments := []domain.FileAssessment{
		{FilePath: "mid.go", Lines: 10, Score: 50, Assessed: true},
		{FilePath: "worst.go", Lines: 10, Score: 90, Assessed: true},
		{FilePath: "best.go", Lines: 10, Score: 5, Assessed: true},
		{FilePath: "tied-b.go", Lines: 10, Score: 50, Assessed: true,
			IssueCounts: map[domain.Severity]int{domain.SeverityWarning: 3}},
	}

	project, err := AggregateProject(assessments, 4, 3)
	if err != nil {
		t.Fatalf("AggregateProject: %v", err)
	}

	if len(project.Files) != 3 {
		t.Fatalf("Expected top 3 files, got %d", len(project.Files))
	}
	if project.Files[0].FilePath != "worst.go" {
		t.Errorf("Worst file first, got %s", project.Files[0].FilePath)
	}
	// Equal scores: more issues ranks worse
	if project.Files[1].FilePath != "tied-b.go" || project.Files[2].FilePath != "mid.go" {
		t.Errorf("Tie-break wrong: %s, %s", project.Files[1].FilePath, project.Files[2].FilePath)
	}
}
