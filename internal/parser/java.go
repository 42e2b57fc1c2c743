package parser

import (
	"github.com/smacker/go-tree-sitter/java"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// javaProfile covers .java sources
func javaProfile() *profile {
	return &profile{
		language:      domain.LangJava,
		sitter:        java.GetLanguage(),
		functionTypes: set("method_declaration", "constructor_declaration"),
		branchTypes: set(
			"if_statement",
			"for_statement",
			"enhanced_for_statement",
			"while_statement",
			"do_statement",
			"switch_label",
			"catch_clause",
			"ternary_expression",
		),
		logicalTypes: set("binary_expression"),
		binaryTypes:  set("binary_expression"),
		nestingTypes: set(
			"if_statement",
			"for_statement",
			"enhanced_for_statement",
			"while_statement",
			"do_statement",
			"switch_expression",
			"try_statement",
			"try_with_resources_statement",
		),
		handlerTypes: set("try_statement", "try_with_resources_statement"),
		statementTypes: set(
			"local_variable_declaration",
		),
		commentTypes:    set("line_comment", "block_comment", "comment"),
		identifierTypes: set("identifier"),
		indexTypes:      set("array_access"),
		callTypes:       set("method_invocation"),
	}
}
