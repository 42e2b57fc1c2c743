package parser

import (
	"github.com/smacker/go-tree-sitter/python"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// pythonProfile covers .py/.pyw/.pyi sources
func pythonProfile() *profile {
	return &profile{
		language:      domain.LangPython,
		sitter:        python.GetLanguage(),
		functionTypes: set("function_definition"),
		branchTypes: set(
			"if_statement",
			"elif_clause",
			"for_statement",
			"while_statement",
			"case_clause",
			"except_clause",
			"conditional_expression",
			"boolean_operator",
		),
		nestingTypes: set(
			"if_statement",
			"for_statement",
			"while_statement",
			"try_statement",
			"with_statement",
			"match_statement",
		),
		binaryTypes:     set("binary_operator"),
		handlerTypes:    set("try_statement"),
		commentTypes:    set("comment"),
		identifierTypes: set("identifier"),
		indexTypes:      set("subscript"),
		callTypes:       set("call"),
		docStrings:      true,
	}
}
