package service

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/analyzer"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
	"github.com/Yzy888666/fuckucodepy/internal/language"
	"github.com/Yzy888666/fuckucodepy/internal/metrics"
	"github.com/Yzy888666/fuckucodepy/internal/parser"
	"github.com/Yzy888666/fuckucodepy/internal/version"
)

// AnalyzeServiceImpl orchestrates one analysis run: discovery, a bounded
// pool of per-file workers, then a single-threaded aggregation over the
// collected outcomes sorted by path. Running the cross-file duplication
// pass and all reductions in the ordered phase keeps results byte-identical
// across worker counts and completion orders.
type AnalyzeServiceImpl struct {
	discovery  domain.SourceDiscovery
	registry   *parser.Registry
	evaluators []metrics.Evaluator
	dup        *metrics.DuplicationAnalyzer
	progress   domain.ProgressManager
}

// NewAnalyzeService creates the analysis orchestrator with default parts
func NewAnalyzeService(progress domain.ProgressManager) *AnalyzeServiceImpl {
	if progress == nil {
		progress = &NoOpProgressManager{}
	}
	return &AnalyzeServiceImpl{
		discovery:  NewSourceDiscovery(),
		registry:   parser.NewRegistry(),
		evaluators: metrics.DefaultEvaluators(),
		dup:        metrics.NewDuplicationAnalyzer(),
		progress:   progress,
	}
}

// fileResult is what one worker hands to the aggregation phase
type fileResult struct {
	path    string
	outcome *domain.ParseOutcome
	skipped *domain.FileAssessment // set instead of outcome for unreadable files
	scores  []domain.MetricScore
	warning string
}

// Analyze runs the full pipeline for one request
func (s *AnalyzeServiceImpl) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	files, err := s.discovery.Discover(req)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		// An analysis of nothing is a misconfiguration, not a clean score
		return nil, domain.NewConfigError("no source files matched the requested paths and patterns", nil)
	}

	results, warnings, err := s.processFiles(ctx, files, req)
	if err != nil {
		return nil, err
	}

	assessment, aggWarnings, err := s.aggregate(results, len(files), req)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, aggWarnings...)
	// Workers finish in arbitrary order; the response must not reflect that
	sort.Strings(warnings)

	return &domain.AnalyzeResponse{
		Assessment:  *assessment,
		Warnings:    warnings,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Version:     version.Version,
	}, nil
}

// processFiles runs the parallel per-file phase: read, classify, extract,
// and score each file with the stateless evaluators. Individual file
// failures become warnings and unassessed entries; only cancellation and
// internal errors abort the run.
func (s *AnalyzeServiceImpl) processFiles(ctx context.Context, files []string, req domain.AnalyzeRequest) ([]fileResult, []string, error) {
	task := s.progress.StartTask("Analyzing sources", len(files))
	defer task.Complete()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency(req.ConcurrencyLimit))

	var mu sync.Mutex
	results := make([]fileResult, 0, len(files))
	var warnings []string

	for _, path := range files {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			result := s.processFile(path)
			task.Increment(1)

			mu.Lock()
			if result.warning != "" {
				warnings = append(warnings, result.warning)
			}
			if result.outcome != nil || result.skipped != nil {
				results = append(results, result)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Cancellation invalidates the run; partial results never leak out
		return nil, nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	return results, warnings, nil
}

// processFile handles one file end to end inside a worker
func (s *AnalyzeServiceImpl) processFile(path string) fileResult {
	result := fileResult{path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		result.warning = fmt.Sprintf("cannot read %s: %v", path, err)
		result.skipped = unreadableAssessment(path)
		return result
	}

	lang := language.Classify(path, content)
	if !lang.Supported() {
		result.warning = fmt.Sprintf("skipping %s: unsupported language", path)
		return result
	}

	extractor, ok := s.registry.ForLanguage(lang)
	if !ok {
		result.warning = fmt.Sprintf("skipping %s: no extractor for %s", path, lang)
		return result
	}

	unit := &domain.SourceUnit{Path: path, Language: lang, Content: content}
	result.outcome = extractor.Extract(unit)
	if result.outcome.Failed {
		return result
	}

	for _, eval := range s.evaluators {
		result.scores = append(result.scores, eval.Evaluate(result.outcome))
	}
	return result
}

// aggregate is the single-threaded reduction phase. Results are sorted by
// path first, the duplication pass runs over that order, then every file is
// folded into its assessment and the project total.
func (s *AnalyzeServiceImpl) aggregate(results []fileResult, totalFiles int, req domain.AnalyzeRequest) (*domain.ProjectAssessment, []string, error) {
	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	var outcomes []*domain.ParseOutcome
	for _, r := range results {
		if r.outcome != nil {
			outcomes = append(outcomes, r.outcome)
		}
	}
	dupScores := s.dup.EvaluateProject(outcomes)

	var warnings []string
	assessments := make([]domain.FileAssessment, 0, len(results))
	for _, r := range results {
		if r.skipped != nil {
			assessments = append(assessments, *r.skipped)
			continue
		}
		if r.outcome.Failed {
			warnings = append(warnings, fmt.Sprintf("parse failed for %s: %s", r.path, r.outcome.Diagnostic))
			assessments = append(assessments, failedAssessment(r.outcome))
			continue
		}

		scores := r.scores
		if dup, ok := dupScores[r.path]; ok {
			scores = append(scores, dup)
		}
		fa, err := analyzer.AggregateFile(r.outcome, scores, req.MaxIssuesPerFile)
		if err != nil {
			return nil, nil, err
		}
		assessments = append(assessments, fa)
	}

	project, err := analyzer.AggregateProject(assessments, totalFiles, req.TopFiles)
	if err != nil {
		return nil, nil, err
	}
	return &project, warnings, nil
}

// concurrency resolves the worker pool size
func (s *AnalyzeServiceImpl) concurrency(limit int) int {
	if limit > 0 {
		return limit
	}
	n := runtime.NumCPU()
	if n > constants.MaxConcurrency {
		n = constants.MaxConcurrency
	}
	if n < 1 {
		n = 1
	}
	return n
}

// unreadableAssessment records a file that could not be read
func unreadableAssessment(path string) *domain.FileAssessment {
	return &domain.FileAssessment{
		FilePath: path,
		Issues: []domain.Issue{{
			Code:     domain.IssueUnreadableFile,
			Severity: domain.SeverityCritical,
			FilePath: path,
		}},
		IssueCounts: map[domain.Severity]int{domain.SeverityCritical: 1},
	}
}

// failedAssessment records a file the parser rejected
func failedAssessment(outcome *domain.ParseOutcome) domain.FileAssessment {
	return domain.FileAssessment{
		FilePath: outcome.Unit.Path,
		Language: string(outcome.Unit.Language),
		Lines:    outcome.TotalLines,
		Issues: []domain.Issue{{
			Code:     domain.IssueParseFailed,
			Severity: domain.SeverityCritical,
			FilePath: outcome.Unit.Path,
			Params:   map[string]string{"reason": outcome.Diagnostic},
		}},
		IssueCounts: map[domain.Severity]int{domain.SeverityCritical: 1},
	}
}
