package service

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/language"
)

// indexFileNames are barrel files that usually hold only re-exports
var indexFileNames = map[string]bool{
	"index.js":    true,
	"index.jsx":   true,
	"index.ts":    true,
	"index.tsx":   true,
	"__init__.py": true,
}

// SourceDiscoveryImpl walks the requested paths and resolves them into a
// sorted, de-duplicated list of candidate source files. Include and exclude
// patterns use gitignore-style matching, so "**" and directory patterns
// behave the same way in config files and .gitignore.
type SourceDiscoveryImpl struct{}

// NewSourceDiscovery creates the default source discovery
func NewSourceDiscovery() *SourceDiscoveryImpl {
	return &SourceDiscoveryImpl{}
}

// Discover resolves the request paths into candidate files
func (d *SourceDiscoveryImpl) Discover(req domain.AnalyzeRequest) ([]string, error) {
	include := compilePatterns(req.IncludePatterns)
	exclude := compilePatterns(req.ExcludePatterns)

	seen := make(map[string]bool)
	var files []string

	for _, root := range req.Paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, domain.NewIOError("cannot access path "+root, err)
		}

		if !info.IsDir() {
			// Explicitly named files bypass include patterns but still
			// honor excludes
			if d.accept(root, nil, exclude, req.SkipIndexFiles) && !seen[root] {
				seen[root] = true
				files = append(files, filepath.Clean(root))
			}
			continue
		}

		var gitIgnore *ignore.GitIgnore
		if req.RespectGitignore {
			if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
				gitIgnore = gi
			}
		}

		err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)

			if info.IsDir() {
				if path == root {
					return nil
				}
				if strings.HasPrefix(filepath.Base(path), ".") {
					return filepath.SkipDir
				}
				// Matching the directory itself lets excludes like
				// "**/node_modules/**" prune the whole subtree
				if exclude != nil && exclude.MatchesPath(rel+"/") {
					return filepath.SkipDir
				}
				if gitIgnore != nil && gitIgnore.MatchesPath(rel+"/") {
					return filepath.SkipDir
				}
				return nil
			}

			if gitIgnore != nil && gitIgnore.MatchesPath(rel) {
				return nil
			}
			if !d.accept(rel, include, exclude, req.SkipIndexFiles) {
				return nil
			}
			if lang := language.ClassifyPath(path); !lang.Supported() {
				return nil
			}

			clean := filepath.Clean(path)
			if !seen[clean] {
				seen[clean] = true
				files = append(files, clean)
			}
			return nil
		})
		if err != nil {
			return nil, domain.NewIOError("failed to walk "+root, err)
		}
	}

	// A stable order regardless of walk and request order
	sort.Strings(files)
	return files, nil
}

// accept applies pattern and barrel-file filters to one relative path
func (d *SourceDiscoveryImpl) accept(rel string, include, exclude *ignore.GitIgnore, skipIndexFiles bool) bool {
	rel = filepath.ToSlash(rel)
	if skipIndexFiles && indexFileNames[filepath.Base(rel)] {
		return false
	}
	if exclude != nil && exclude.MatchesPath(rel) {
		return false
	}
	if include != nil && !include.MatchesPath(rel) {
		return false
	}
	return true
}

// compilePatterns builds a gitignore matcher from config patterns, nil when
// there are none
func compilePatterns(patterns []string) *ignore.GitIgnore {
	if len(patterns) == 0 {
		return nil
	}
	return ignore.CompileIgnoreLines(patterns...)
}
