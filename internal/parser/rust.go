package parser

import (
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// rustProfile covers .rs sources. The `?` operator (try_expression) is the
// local error-handling construct.
func rustProfile() *profile {
	return &profile{
		language:      domain.LangRust,
		sitter:        rust.GetLanguage(),
		functionTypes: set("function_item", "closure_expression"),
		branchTypes: set(
			"if_expression",
			"while_expression",
			"loop_expression",
			"for_expression",
			"match_arm",
		),
		logicalTypes: set("binary_expression"),
		binaryTypes:  set("binary_expression"),
		nestingTypes: set(
			"if_expression",
			"while_expression",
			"loop_expression",
			"for_expression",
			"match_expression",
		),
		handlerTypes: set("try_expression"),
		statementTypes: set(
			"let_declaration",
			"expression_statement",
		),
		commentTypes:    set("line_comment", "block_comment"),
		identifierTypes: set("identifier", "field_identifier"),
		indexTypes:      set("index_expression"),
		callTypes:       set("call_expression"),
	}
}
