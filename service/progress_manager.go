package service

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// ProgressManagerImpl renders analysis progress on stderr. Workers report
// from multiple goroutines, so task bookkeeping is mutex-guarded; the bars
// themselves are safe for concurrent Add calls.
type ProgressManagerImpl struct {
	out io.Writer

	mu   sync.Mutex
	bars []*progressbar.ProgressBar
}

// NewProgressManager returns a live progress manager when enabled and stderr
// is a terminal, otherwise the no-op variant. Reports piped to files or
// machine formats must never carry bar redraws.
func NewProgressManager(enabled bool) domain.ProgressManager {
	if !enabled || !IsInteractiveEnvironment() {
		return &NoOpProgressManager{}
	}
	return &ProgressManagerImpl{out: os.Stderr}
}

// IsInteractiveEnvironment reports whether stderr is a terminal
func IsInteractiveEnvironment() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StartTask begins a bar for one phase of the run. A non-positive total
// yields an indeterminate spinner, used while file counts are unknown.
func (pm *ProgressManagerImpl) StartTask(description string, total int) domain.TaskProgress {
	if total <= 0 {
		total = -1
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(pm.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(18),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	pm.mu.Lock()
	pm.bars = append(pm.bars, bar)
	pm.mu.Unlock()

	return &TaskProgressImpl{bar: bar}
}

// IsInteractive reports that bars are being drawn
func (pm *ProgressManagerImpl) IsInteractive() bool { return true }

// Close finishes any bar still running so the terminal line is released
func (pm *ProgressManagerImpl) Close() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	for _, bar := range pm.bars {
		_ = bar.Finish()
	}
	pm.bars = nil
}

// TaskProgressImpl drives a single progress bar
type TaskProgressImpl struct {
	bar *progressbar.ProgressBar
}

// Increment advances the bar by n completed files
func (tp *TaskProgressImpl) Increment(n int) {
	_ = tp.bar.Add(n)
}

// Describe replaces the bar label, e.g. with the current phase
func (tp *TaskProgressImpl) Describe(description string) {
	tp.bar.Describe(description)
}

// Complete fills and finishes the bar
func (tp *TaskProgressImpl) Complete() {
	_ = tp.bar.Finish()
}

// NoOpProgressManager swallows all progress reporting. It is the default
// for non-interactive runs and for callers that pass a nil manager.
type NoOpProgressManager struct{}

func (pm *NoOpProgressManager) StartTask(string, int) domain.TaskProgress { return noOpTask{} }
func (pm *NoOpProgressManager) IsInteractive() bool                       { return false }
func (pm *NoOpProgressManager) Close()                                    {}

type noOpTask struct{}

func (noOpTask) Increment(int)   {}
func (noOpTask) Describe(string) {}
func (noOpTask) Complete()       {}
