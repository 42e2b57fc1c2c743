package metrics

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// duplicateRegionCap bounds how many duplicated regions get an issue per file
const duplicateRegionCap = 5

// DuplicationAnalyzer detects near-identical statement sequences across
// functions and files via hashed line shingles. Unlike the per-file
// evaluators it needs the whole project, so the orchestrator runs it during
// the single-threaded aggregation phase, over outcomes sorted by path; the
// first file owning a shingle in that order is never flagged, later copies
// are. This keeps results independent of worker count and completion order.
type DuplicationAnalyzer struct {
	shingleSize int
}

// NewDuplicationAnalyzer creates the duplication analyzer
func NewDuplicationAnalyzer() *DuplicationAnalyzer {
	return &DuplicationAnalyzer{shingleSize: constants.DuplicationShingleSize}
}

// Name returns the metric name
func (d *DuplicationAnalyzer) Name() string { return constants.MetricDuplication }

// Weight returns the metric weight
func (d *DuplicationAnalyzer) Weight() float64 { return constants.WeightDuplication }

// EvaluateProject scores every outcome, keyed by file path. The caller
// passes outcomes sorted by path.
func (d *DuplicationAnalyzer) EvaluateProject(outcomes []*domain.ParseOutcome) map[string]domain.MetricScore {
	scores := make(map[string]domain.MetricScore, len(outcomes))
	seen := make(map[uint64]string) // shingle hash -> first owning path

	for _, outcome := range outcomes {
		if outcome.Failed {
			scores[outcome.Unit.Path] = inapplicable(d.Name(), d.Weight())
			continue
		}
		scores[outcome.Unit.Path] = d.evaluateFile(outcome, seen)
	}

	return scores
}

// evaluateFile scores one file against the shingles seen so far
func (d *DuplicationAnalyzer) evaluateFile(outcome *domain.ParseOutcome, seen map[uint64]string) domain.MetricScore {
	score := domain.MetricScore{Name: d.Name(), Weight: d.Weight(), Applicable: true}

	lines := significantLines(outcome.Unit.Content)
	if len(lines) < d.shingleSize {
		return score
	}

	duplicated := make([]bool, len(lines))
	firstOwner := make([]string, len(lines))

	for i := 0; i+d.shingleSize <= len(lines); i++ {
		h := d.hashShingle(lines[i : i+d.shingleSize])
		owner, ok := seen[h]
		if !ok {
			seen[h] = outcome.Unit.Path
			continue
		}
		for j := i; j < i+d.shingleSize; j++ {
			duplicated[j] = true
			if firstOwner[j] == "" {
				firstOwner[j] = owner
			}
		}
	}

	dupCount := 0
	regions := 0
	for i := 0; i < len(lines); i++ {
		if !duplicated[i] {
			continue
		}
		dupCount++
		if i > 0 && duplicated[i-1] {
			continue
		}
		// Start of a duplicated region
		end := i
		for end+1 < len(lines) && duplicated[end+1] {
			end++
		}
		if regions < duplicateRegionCap {
			regions++
			score.Issues = append(score.Issues, domain.Issue{
				Code:     domain.IssueDuplicateBlock,
				Severity: domain.SeverityWarning,
				FilePath: outcome.Unit.Path,
				Line:     lines[i].number,
				Params: map[string]string{
					"lines":      strconv.Itoa(end - i + 1),
					"first_seen": firstOwner[i],
				},
			})
		}
	}

	score.Value = clamp(float64(dupCount) / float64(len(lines)))
	return score
}

// hashShingle hashes a window of normalized lines
func (d *DuplicationAnalyzer) hashShingle(window []sourceLine) uint64 {
	h := fnv.New64a()
	for _, line := range window {
		_, _ = h.Write([]byte(line.text))
		_, _ = h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// sourceLine is a normalized line with its original 1-based line number
type sourceLine struct {
	text   string
	number int
}

// significantLines strips blank and comment-only lines so that formatting
// and documentation differences do not hide duplicated logic
func significantLines(content []byte) []sourceLine {
	var lines []sourceLine
	for i, raw := range strings.Split(string(content), "\n") {
		text := strings.TrimSpace(raw)
		if text == "" || isCommentLine(text) {
			continue
		}
		lines = append(lines, sourceLine{text: text, number: i + 1})
	}
	return lines
}

// isCommentLine matches lines that are only a comment in any supported
// language's syntax
func isCommentLine(text string) bool {
	return strings.HasPrefix(text, "//") ||
		strings.HasPrefix(text, "#") ||
		strings.HasPrefix(text, "/*") ||
		strings.HasPrefix(text, "*") ||
		strings.HasPrefix(text, "\"\"\"") ||
		strings.HasPrefix(text, "'''")
}
