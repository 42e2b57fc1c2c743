package parser

import (
	"regexp"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// riskyCallPattern matches callee names that usually touch I/O or other
// failure-prone resources. Used by the error-handling metric facts.
var riskyCallPattern = regexp.MustCompile(`(?i)(open|read|write|close|remove|delete|fetch|request|send|recv|connect|exec|query|parse|load|dial)`)

// profile parameterizes the generic tree-sitter extractor for one language.
//
// Branch counting follows a fixed rule: every if, loop, case/switch arm,
// catch clause, conditional expression, and short-circuit boolean operator
// adds one decision point; the baseline complexity of 1 is added by
// FunctionRecord.Complexity, not stored here.
type profile struct {
	language domain.Language
	sitter   *sitter.Language

	// functionTypes are node types that open a function scope
	functionTypes map[string]bool

	// branchTypes count one decision point each
	branchTypes map[string]bool

	// logicalTypes are binary-expression node types whose operator field
	// must be inspected for short-circuit operators
	logicalTypes map[string]bool

	// binaryTypes are binary-operator node types whose operator field must
	// be inspected for division. Distinct from logicalTypes because some
	// grammars (Python) count short-circuit operators through a dedicated
	// node type while arithmetic uses another.
	binaryTypes map[string]bool

	// nestingTypes are the block constructs contributing to nesting depth
	nestingTypes map[string]bool

	// handlerTypes are try/catch-equivalent constructs
	handlerTypes map[string]bool

	// statementTypes lists statement node types beyond the shared
	// "_statement" suffix rule
	statementTypes map[string]bool

	commentTypes    map[string]bool
	identifierTypes map[string]bool

	// indexTypes and callTypes feed the risky-operation count
	indexTypes map[string]bool
	callTypes  map[string]bool

	// docStrings enables counting bare string statements as documentation
	docStrings bool

	// nameFn overrides function-name extraction (nil = "name" field with
	// variable-declarator fallback)
	nameFn func(fn *sitter.Node, src []byte) string

	// paramFn overrides parameter counting (nil = named children of the
	// "parameters" field)
	paramFn func(fn *sitter.Node, src []byte) int

	// errHandlerFn recognizes language-specific handling constructs that
	// are not plain node types (e.g. Go's err != nil checks)
	errHandlerFn func(n *sitter.Node, src []byte) bool
}

// sitterLanguage returns the grammar for this profile
func (p *profile) sitterLanguage() *sitter.Language {
	return p.sitter
}

// isBranch reports whether the node adds a decision point
func (p *profile) isBranch(n *sitter.Node, src []byte) bool {
	t := n.Type()
	if p.branchTypes[t] {
		return true
	}
	if p.logicalTypes[t] {
		op := n.ChildByFieldName("operator")
		if op != nil {
			s := op.Content(src)
			return s == "&&" || s == "||"
		}
	}
	return false
}

// isRiskyOp reports whether the node is a risky operation: a division,
// an index/subscript access, or a call to an I/O-looking function.
func (p *profile) isRiskyOp(n *sitter.Node, src []byte) bool {
	t := n.Type()
	if p.indexTypes[t] {
		return true
	}
	if p.binaryTypes[t] {
		if op := n.ChildByFieldName("operator"); op != nil && op.Content(src) == "/" {
			return true
		}
	}
	if p.callTypes[t] {
		callee := n.ChildByFieldName("function")
		if callee == nil {
			callee = n.ChildByFieldName("name")
		}
		if callee != nil && riskyCallPattern.MatchString(callee.Content(src)) {
			return true
		}
	}
	return false
}

// isErrorHandler reports whether the node is an error-handling construct
func (p *profile) isErrorHandler(n *sitter.Node, src []byte) bool {
	if p.handlerTypes[n.Type()] {
		return true
	}
	if p.errHandlerFn != nil {
		return p.errHandlerFn(n, src)
	}
	return false
}

// isDocString reports whether the node is a bare string statement counted
// as documentation (Python docstrings)
func (p *profile) isDocString(n *sitter.Node) bool {
	if !p.docStrings || n.Type() != "expression_statement" {
		return false
	}
	return n.NamedChildCount() == 1 && n.NamedChild(0).Type() == "string"
}

// functionName extracts the function's name, falling back to the enclosing
// variable declarator for anonymous function expressions.
func (p *profile) functionName(fn *sitter.Node, src []byte) string {
	if p.nameFn != nil {
		return p.nameFn(fn, src)
	}
	if name := fn.ChildByFieldName("name"); name != nil {
		return name.Content(src)
	}
	for parent := fn.Parent(); parent != nil; parent = parent.Parent() {
		switch parent.Type() {
		case "variable_declarator", "pair", "assignment_expression", "public_field_definition":
			if name := parent.ChildByFieldName("name"); name != nil {
				return name.Content(src)
			}
			if key := parent.ChildByFieldName("key"); key != nil {
				return key.Content(src)
			}
			if left := parent.ChildByFieldName("left"); left != nil {
				return left.Content(src)
			}
		case "statement_block", "block", "program", "module":
			return "<anonymous>"
		}
	}
	return "<anonymous>"
}

// parameterCount counts the function's declared parameters
func (p *profile) parameterCount(fn *sitter.Node, src []byte) int {
	if p.paramFn != nil {
		return p.paramFn(fn, src)
	}
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		params = fn.ChildByFieldName("parameter")
	}
	if params == nil {
		return 0
	}
	if p.identifierTypes[params.Type()] {
		return 1 // single-identifier arrow function parameter
	}
	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		if !p.commentTypes[params.NamedChild(i).Type()] {
			count++
		}
	}
	return count
}

// set builds a membership map from node type names
func set(types ...string) map[string]bool {
	m := make(map[string]bool, len(types))
	for _, t := range types {
		m[t] = true
	}
	return m
}

// allProfiles returns one profile per supported language
func allProfiles() []*profile {
	return []*profile{
		pythonProfile(),
		javascriptProfile(),
		typescriptProfile(),
		javaProfile(),
		cProfile(),
		cppProfile(),
		goProfile(),
		rustProfile(),
	}
}
