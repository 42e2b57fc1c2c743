package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// cProfile covers .c/.h sources. C has no handler construct, so the
// error-handling metric reports itself inapplicable for this language.
func cProfile() *profile {
	p := cFamilyProfile()
	p.language = domain.LangC
	p.sitter = c.GetLanguage()
	return p
}

// cppProfile covers .cpp/.cc/.cxx/.hpp/.hxx sources
func cppProfile() *profile {
	p := cFamilyProfile()
	p.language = domain.LangCPP
	p.sitter = cpp.GetLanguage()
	p.branchTypes["catch_clause"] = true
	p.branchTypes["for_range_loop"] = true
	p.nestingTypes["for_range_loop"] = true
	p.nestingTypes["try_statement"] = true
	p.handlerTypes = set("try_statement")
	return p
}

// cFamilyProfile holds the node-type sets shared by C and C++
func cFamilyProfile() *profile {
	return &profile{
		functionTypes: set("function_definition"),
		branchTypes: set(
			"if_statement",
			"for_statement",
			"while_statement",
			"do_statement",
			"case_statement",
			"conditional_expression",
		),
		logicalTypes: set("binary_expression"),
		binaryTypes:  set("binary_expression"),
		nestingTypes: set(
			"if_statement",
			"for_statement",
			"while_statement",
			"do_statement",
			"switch_statement",
		),
		handlerTypes: map[string]bool{},
		statementTypes: set(
			"declaration",
		),
		commentTypes:    set("comment"),
		identifierTypes: set("identifier", "field_identifier"),
		indexTypes:      set("subscript_expression"),
		callTypes:       set("call_expression"),
		nameFn:          cFunctionName,
		paramFn:         cParameterCount,
	}
}

// cParameterCount walks the declarator chain to the parameter list, which
// hangs off the function declarator rather than the definition itself
func cParameterCount(fn *sitter.Node, src []byte) int {
	node := fn.ChildByFieldName("declarator")
	for node != nil {
		if params := node.ChildByFieldName("parameters"); params != nil {
			count := 0
			for i := 0; i < int(params.NamedChildCount()); i++ {
				if params.NamedChild(i).Type() == "parameter_declaration" {
					count++
				}
			}
			return count
		}
		node = node.ChildByFieldName("declarator")
	}
	return 0
}

// cFunctionName digs through declarators (pointers, qualifiers) to the
// declared identifier of a function definition
func cFunctionName(fn *sitter.Node, src []byte) string {
	node := fn.ChildByFieldName("declarator")
	for node != nil {
		switch node.Type() {
		case "identifier", "field_identifier", "qualified_identifier", "operator_name", "destructor_name":
			return node.Content(src)
		}
		next := node.ChildByFieldName("declarator")
		if next == nil {
			next = node.ChildByFieldName("name")
		}
		if next == nil {
			// Fall back to the first named child that can still lead
			// to an identifier
			if node.NamedChildCount() > 0 {
				next = node.NamedChild(0)
			}
		}
		if next == node {
			break
		}
		node = next
	}
	return "<anonymous>"
}
