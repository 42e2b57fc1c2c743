package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// goProfile covers .go sources. Go has no try/catch; an explicit
// `err != nil` comparison or a recover() call counts as local handling.
func goProfile() *profile {
	return &profile{
		language:      domain.LangGo,
		sitter:        golang.GetLanguage(),
		functionTypes: set("function_declaration", "method_declaration", "func_literal"),
		branchTypes: set(
			"if_statement",
			"for_statement",
			"expression_case",
			"type_case",
			"communication_case",
		),
		logicalTypes: set("binary_expression"),
		binaryTypes:  set("binary_expression"),
		nestingTypes: set(
			"if_statement",
			"for_statement",
			"expression_switch_statement",
			"type_switch_statement",
			"select_statement",
		),
		statementTypes: set(
			"short_var_declaration",
			"var_declaration",
			"const_declaration",
		),
		commentTypes:    set("comment"),
		identifierTypes: set("identifier", "field_identifier"),
		indexTypes:      set("index_expression"),
		callTypes:       set("call_expression"),
		paramFn:         goParameterCount,
		errHandlerFn:    goErrorHandler,
	}
}

// goErrorHandler recognizes `x != nil` comparisons and recover() calls
func goErrorHandler(n *sitter.Node, src []byte) bool {
	switch n.Type() {
	case "binary_expression":
		op := n.ChildByFieldName("operator")
		if op == nil || op.Content(src) != "!=" {
			return false
		}
		left := n.ChildByFieldName("left")
		right := n.ChildByFieldName("right")
		return (left != nil && left.Content(src) == "nil") ||
			(right != nil && right.Content(src) == "nil")
	case "call_expression":
		fn := n.ChildByFieldName("function")
		return fn != nil && fn.Content(src) == "recover"
	}
	return false
}

// goParameterCount counts declared names; `a, b int` declares two
func goParameterCount(fn *sitter.Node, _ []byte) int {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		decl := params.NamedChild(i)
		names := 0
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			if decl.NamedChild(j).Type() == "identifier" {
				names++
			}
		}
		if names == 0 {
			names = 1 // unnamed parameter
		}
		count += names
	}
	return count
}
