// Package testutil provides helper functions for testing analyzer components
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/parser"
)

// ParseSource extracts a parse outcome from inline source code, failing the
// test when the language has no extractor or extraction fails syntactically
func ParseSource(t *testing.T, lang domain.Language, path, source string) *domain.ParseOutcome {
	t.Helper()
	registry := parser.NewRegistry()
	extractor, ok := registry.ForLanguage(lang)
	if !ok {
		t.Fatalf("No extractor registered for %s", lang)
	}
	outcome := extractor.Extract(&domain.SourceUnit{
		Path:     path,
		Language: lang,
		Content:  []byte(source),
	})
	if outcome.Failed {
		t.Fatalf("Failed to parse test code: %s", outcome.Diagnostic)
	}
	return outcome
}

// MakeOutcome builds a parse outcome directly from function records, for
// metric tests that do not need real parsing
func MakeOutcome(path string, lang domain.Language, totalLines, commentLines int, fns ...domain.FunctionRecord) *domain.ParseOutcome {
	return &domain.ParseOutcome{
		Unit: &domain.SourceUnit{
			Path:     path,
			Language: lang,
			Lines:    totalLines,
		},
		Functions:    fns,
		TotalLines:   totalLines,
		CommentLines: commentLines,
	}
}

// WriteSourceTree writes a set of path->content files under a temp dir and
// returns its root
func WriteSourceTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
	return root
}

// FindFunction returns the extracted function with the given name
func FindFunction(t *testing.T, outcome *domain.ParseOutcome, name string) domain.FunctionRecord {
	t.Helper()
	for _, fn := range outcome.Functions {
		if fn.Name == name {
			return fn
		}
	}
	t.Fatalf("Function %q not found; have %v", name, functionNames(outcome))
	return domain.FunctionRecord{}
}

func functionNames(outcome *domain.ParseOutcome) []string {
	names := make([]string, 0, len(outcome.Functions))
	for _, fn := range outcome.Functions {
		names = append(names, fn.Name)
	}
	return names
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

// AssertFalse fails the test if condition is true
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}

// AssertInDelta fails the test if actual is not within delta of expected
func AssertInDelta(t *testing.T, expected, actual, delta float64) {
	t.Helper()
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	if diff > delta {
		t.Errorf("Expected %v within %v, got %v", expected, delta, actual)
	}
}
