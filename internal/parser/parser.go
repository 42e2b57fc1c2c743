// Package parser turns raw source bytes into language-neutral structural
// facts (ParseOutcome) using tree-sitter grammars. One extractor profile
// exists per supported language; a read-only registry dispatches by tag.
package parser

import (
	"bytes"
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// Extractor turns a SourceUnit into a ParseOutcome. Implementations never
// panic past their boundary; malformed input yields a failed outcome.
type Extractor interface {
	Language() domain.Language
	Extract(unit *domain.SourceUnit) *domain.ParseOutcome
}

// Registry maps language tags to extractors. It is populated once at
// startup and read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	extractors map[domain.Language]Extractor
}

// NewRegistry creates a registry with every supported language registered
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[domain.Language]Extractor)}
	for _, p := range allProfiles() {
		r.extractors[p.language] = &treeExtractor{profile: p}
	}
	return r
}

// ForLanguage returns the extractor for a language tag
func (r *Registry) ForLanguage(lang domain.Language) (Extractor, bool) {
	e, ok := r.extractors[lang]
	return e, ok
}

// Languages returns the registered language tags
func (r *Registry) Languages() []domain.Language {
	langs := make([]domain.Language, 0, len(r.extractors))
	for _, l := range domain.SupportedLanguages() {
		if _, ok := r.extractors[l]; ok {
			langs = append(langs, l)
		}
	}
	return langs
}

// treeExtractor is the generic tree-sitter extractor, parameterized by a
// language profile. A fresh sitter parser is created per call because
// tree-sitter parsers are not safe for concurrent use.
type treeExtractor struct {
	profile *profile
}

// Language returns the extractor's language tag
func (e *treeExtractor) Language() domain.Language {
	return e.profile.language
}

// Extract parses the unit and collects structural facts. Any panic from the
// underlying parser is recovered into a failed outcome.
func (e *treeExtractor) Extract(unit *domain.SourceUnit) (outcome *domain.ParseOutcome) {
	outcome = &domain.ParseOutcome{
		Unit:       unit,
		TotalLines: countLines(unit.Content),
		BlankLines: countBlankLines(unit.Content),
	}
	unit.Lines = outcome.TotalLines

	defer func() {
		if r := recover(); r != nil {
			outcome.Functions = nil
			outcome.Failed = true
			outcome.Diagnostic = fmt.Sprintf("extractor panic: %v", r)
		}
	}()

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(e.profile.sitterLanguage())

	tree, err := p.ParseCtx(context.Background(), nil, unit.Content)
	if tree == nil {
		outcome.Failed = true
		outcome.Diagnostic = fmt.Sprintf("parse failed: %v", err)
		return outcome
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		outcome.Failed = true
		outcome.Diagnostic = "parse produced no root node"
		return outcome
	}

	if root.HasError() {
		outcome.Failed = true
		outcome.Diagnostic = fmt.Sprintf("syntax error near line %d", firstErrorLine(root))
		return outcome
	}

	outcome.CommentLines = e.countCommentLines(root, unit.Content)
	outcome.Functions = e.collectFunctions(root, unit.Content)
	return outcome
}

// collectFunctions walks the tree and builds a FunctionRecord for every
// function node, in declaration order.
func (e *treeExtractor) collectFunctions(root *sitter.Node, src []byte) []domain.FunctionRecord {
	var functions []domain.FunctionRecord

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if e.profile.functionTypes[n.Type()] {
			functions = append(functions, e.buildFunction(n, src))
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(root)

	return functions
}

// buildFunction computes the facts for a single function node. Nested
// function definitions get their own record, so the walk stops at them.
func (e *treeExtractor) buildFunction(fn *sitter.Node, src []byte) domain.FunctionRecord {
	rec := domain.FunctionRecord{
		Name:       e.profile.functionName(fn, src),
		StartLine:  int(fn.StartPoint().Row) + 1,
		EndLine:    int(fn.EndPoint().Row) + 1,
		Parameters: e.profile.parameterCount(fn, src),
	}

	var walk func(n *sitter.Node, depth int)
	walk = func(n *sitter.Node, depth int) {
		for i := 0; i < int(n.NamedChildCount()); i++ {
			child := n.NamedChild(i)
			t := child.Type()

			if e.profile.functionTypes[t] {
				continue // nested function, owns its own facts
			}

			if e.profile.isBranch(child, src) {
				rec.Branches++
			}
			if e.profile.statementTypes[t] || isStatementType(t) {
				rec.Statements++
			}
			if e.profile.identifierTypes[t] {
				rec.Identifiers = append(rec.Identifiers, child.Content(src))
			}
			if e.profile.isRiskyOp(child, src) {
				rec.RiskyOps++
			}
			if e.profile.isErrorHandler(child, src) {
				rec.HasErrorHandling = true
			}

			childDepth := depth
			if e.profile.nestingTypes[t] {
				childDepth++
				if childDepth > rec.NestingDepth {
					rec.NestingDepth = childDepth
				}
			}
			walk(child, childDepth)
		}
	}
	walk(fn, 0)

	return rec
}

// countCommentLines counts distinct source lines covered by comment nodes
// (and, where the profile says so, documentation string statements).
func (e *treeExtractor) countCommentLines(root *sitter.Node, src []byte) int {
	lines := make(map[int]struct{})

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if e.profile.commentTypes[n.Type()] || e.profile.isDocString(n) {
			start := int(n.StartPoint().Row)
			end := int(n.EndPoint().Row)
			for l := start; l <= end; l++ {
				lines[l] = struct{}{}
			}
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	return len(lines)
}

// isStatementType matches the cross-language statement node suffix
func isStatementType(t string) bool {
	const suffix = "_statement"
	return len(t) > len(suffix) && t[len(t)-len(suffix):] == suffix
}

// firstErrorLine locates the first ERROR node for the parse diagnostic
func firstErrorLine(root *sitter.Node) int {
	var line int
	var walk func(n *sitter.Node) bool
	walk = func(n *sitter.Node) bool {
		if n.IsError() {
			line = int(n.StartPoint().Row) + 1
			return true
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if walk(n.Child(i)) {
				return true
			}
		}
		return false
	}
	if !walk(root) {
		line = 1
	}
	return line
}

// countLines counts total lines in the content
func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	n := bytes.Count(content, []byte{'\n'})
	if content[len(content)-1] != '\n' {
		n++
	}
	return n
}

// countBlankLines counts whitespace-only lines
func countBlankLines(content []byte) int {
	blank := 0
	for _, line := range bytes.Split(content, []byte{'\n'}) {
		if len(bytes.TrimSpace(line)) == 0 {
			blank++
		}
	}
	// A trailing newline produces a final empty slice that is not a line
	if len(content) > 0 && content[len(content)-1] == '\n' {
		blank--
	}
	if blank < 0 {
		blank = 0
	}
	return blank
}
