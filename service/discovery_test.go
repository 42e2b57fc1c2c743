package service

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/testutil"
)

func discover(t *testing.T, root string, req domain.AnalyzeRequest) []string {
	t.Helper()
	req.Paths = []string{root}
	files, err := NewSourceDiscovery().Discover(req)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	rel := make([]string, len(files))
	for i, f := range files {
		r, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatalf("Rel: %v", err)
		}
		rel[i] = filepath.ToSlash(r)
	}
	return rel
}

func TestDiscover_SupportedFilesOnly(t *testing.T) {
	root := testutil.WriteSourceTree(t, map[string]string{
		"a.py":      "x = 1\n",
		"b.js":      "var x = 1;\n",
		"README.md": "# docs\n",
		"data.json": "{}\n",
	})

	files := discover(t, root, domain.AnalyzeRequest{})
	want := []string{"a.py", "b.js"}
	if !equalStrings(files, want) {
		t.Errorf("Discover = %v, want %v", files, want)
	}
}

func TestDiscover_SortedAndDeduplicated(t *testing.T) {
	root := testutil.WriteSourceTree(t, map[string]string{
		"z.py": "x = 1\n",
		"a.py": "x = 1\n",
		"m.py": "x = 1\n",
	})

	files := discover(t, root, domain.AnalyzeRequest{})
	if !sort.StringsAreSorted(files) {
		t.Errorf("Discovery output not sorted: %v", files)
	}
}

func TestDiscover_ExcludePatterns(t *testing.T) {
	root := testutil.WriteSourceTree(t, map[string]string{
		"src/app.js":             "var x = 1;\n",
		"node_modules/dep/x.js":  "var x = 1;\n",
		"build/out.js":           "var x = 1;\n",
		"src/legacy.min.js":      "var x=1;\n",
		"vendor/lib/generated.c": "int x;\n",
	})

	files := discover(t, root, domain.AnalyzeRequest{
		ExcludePatterns: []string{
			"**/node_modules/**",
			"**/build/**",
			"**/vendor/**",
			"**/*.min.js",
		},
	})
	want := []string{"src/app.js"}
	if !equalStrings(files, want) {
		t.Errorf("Discover = %v, want %v", files, want)
	}
}

func TestDiscover_IncludePatterns(t *testing.T) {
	root := testutil.WriteSourceTree(t, map[string]string{
		"a.py":  "x = 1\n",
		"b.js":  "var x;\n",
		"c.go":  "package c\n",
		"d.tsx": "let x = 1;\n",
	})

	files := discover(t, root, domain.AnalyzeRequest{
		IncludePatterns: []string{"**/*.py", "**/*.go"},
	})
	want := []string{"a.py", "c.go"}
	if !equalStrings(files, want) {
		t.Errorf("Discover = %v, want %v", files, want)
	}
}

func TestDiscover_SkipIndexFiles(t *testing.T) {
	root := testutil.WriteSourceTree(t, map[string]string{
		"pkg/index.js":    "export * from './impl';\n",
		"pkg/impl.js":     "var x = 1;\n",
		"mod/__init__.py": "\n",
		"mod/core.py":     "x = 1\n",
	})

	files := discover(t, root, domain.AnalyzeRequest{SkipIndexFiles: true})
	want := []string{"mod/core.py", "pkg/impl.js"}
	if !equalStrings(files, want) {
		t.Errorf("Discover = %v, want %v", files, want)
	}

	// Without the flag the barrels come back
	files = discover(t, root, domain.AnalyzeRequest{SkipIndexFiles: false})
	if len(files) != 4 {
		t.Errorf("Expected 4 files without skip, got %v", files)
	}
}

func TestDiscover_RespectsGitignore(t *testing.T) {
	root := testutil.WriteSourceTree(t, map[string]string{
		".gitignore":   "generated/\n*.tmp.js\n",
		"app.js":       "var x;\n",
		"generated/g.js": "var x;\n",
		"work.tmp.js":  "var x;\n",
	})

	files := discover(t, root, domain.AnalyzeRequest{RespectGitignore: true})
	want := []string{"app.js"}
	if !equalStrings(files, want) {
		t.Errorf("Discover = %v, want %v", files, want)
	}
}

func TestDiscover_HiddenDirectoriesSkipped(t *testing.T) {
	root := testutil.WriteSourceTree(t, map[string]string{
		".git/hooks/x.py": "x = 1\n",
		"visible.py":      "x = 1\n",
	})

	files := discover(t, root, domain.AnalyzeRequest{})
	want := []string{"visible.py"}
	if !equalStrings(files, want) {
		t.Errorf("Discover = %v, want %v", files, want)
	}
}

func TestDiscover_ExplicitFileBypassesIncludes(t *testing.T) {
	root := testutil.WriteSourceTree(t, map[string]string{
		"tool.py": "x = 1\n",
	})
	target := filepath.Join(root, "tool.py")

	files, err := NewSourceDiscovery().Discover(domain.AnalyzeRequest{
		Paths:           []string{target},
		IncludePatterns: []string{"**/*.js"},
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0], "tool.py") {
		t.Errorf("Explicitly named file should be kept, got %v", files)
	}
}

func TestDiscover_MissingPath(t *testing.T) {
	_, err := NewSourceDiscovery().Discover(domain.AnalyzeRequest{
		Paths: []string{"/no/such/dir"},
	})
	if err == nil {
		t.Fatal("Expected error for missing path")
	}
	if !domain.IsCategory(err, domain.ErrIO) {
		t.Errorf("Expected IO category, got %v", err)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
