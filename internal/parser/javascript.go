package parser

import (
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"

	"github.com/Yzy888666/fuckucodepy/domain"
)

// javascriptProfile covers .js/.jsx/.mjs/.cjs sources
func javascriptProfile() *profile {
	p := ecmaProfile()
	p.language = domain.LangJavaScript
	p.sitter = javascript.GetLanguage()
	return p
}

// typescriptProfile covers .ts/.tsx sources. The TSX grammar parses both
// plain TypeScript and JSX-bearing files.
func typescriptProfile() *profile {
	p := ecmaProfile()
	p.language = domain.LangTypeScript
	p.sitter = tsx.GetLanguage()
	return p
}

// ecmaProfile holds the node-type sets shared by JavaScript and TypeScript
func ecmaProfile() *profile {
	return &profile{
		functionTypes: set(
			"function_declaration",
			"function_expression",
			"function",
			"arrow_function",
			"generator_function_declaration",
			"generator_function",
			"method_definition",
		),
		branchTypes: set(
			"if_statement",
			"for_statement",
			"for_in_statement",
			"for_of_statement",
			"while_statement",
			"do_statement",
			"switch_case",
			"catch_clause",
			"ternary_expression",
		),
		logicalTypes: set("binary_expression"),
		binaryTypes:  set("binary_expression"),
		nestingTypes: set(
			"if_statement",
			"for_statement",
			"for_in_statement",
			"for_of_statement",
			"while_statement",
			"do_statement",
			"switch_statement",
			"try_statement",
		),
		handlerTypes: set("try_statement"),
		statementTypes: set(
			"lexical_declaration",
			"variable_declaration",
		),
		commentTypes: set("comment"),
		identifierTypes: set(
			"identifier",
			"property_identifier",
			"shorthand_property_identifier",
		),
		indexTypes: set("subscript_expression"),
		callTypes:  set("call_expression"),
	}
}
