package parser_test

import (
	"strings"
	"testing"

	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/parser"
	"github.com/Yzy888666/fuckucodepy/internal/testutil"
)

func TestRegistry_CoversAllSupportedLanguages(t *testing.T) {
	registry := parser.NewRegistry()
	for _, lang := range domain.SupportedLanguages() {
		if _, ok := registry.ForLanguage(lang); !ok {
			t.Errorf("No extractor registered for %s", lang)
		}
	}
	if _, ok := registry.ForLanguage(domain.LangUnsupported); ok {
		t.Error("Unsupported language should have no extractor")
	}
}

func TestExtract_JavaScriptFunctions(t *testing.T) {
	source := `function add(a, b) {
  return a + b;
}

const mul = (x, y) => {
  if (x === 0 || y === 0) {
    return 0;
  }
  return x * y;
};

class Calc {
  square(n) {
    return n * n;
  }
}
`
	outcome := testutil.ParseSource(t, domain.LangJavaScript, "calc.js", source)

	if len(outcome.Functions) != 3 {
		t.Fatalf("Expected 3 functions, got %d", len(outcome.Functions))
	}

	add := testutil.FindFunction(t, outcome, "add")
	if add.Parameters != 2 {
		t.Errorf("add should have 2 parameters, got %d", add.Parameters)
	}
	if add.Branches != 0 {
		t.Errorf("add should have no branches, got %d", add.Branches)
	}

	// The arrow function is named from its declarator
	mul := testutil.FindFunction(t, outcome, "mul")
	// One if plus one short-circuit operator
	if mul.Branches != 2 {
		t.Errorf("mul should have 2 branches (if + ||), got %d", mul.Branches)
	}
	if mul.NestingDepth < 1 {
		t.Errorf("mul should nest at least 1 level, got %d", mul.NestingDepth)
	}

	square := testutil.FindFunction(t, outcome, "square")
	if square.Parameters != 1 {
		t.Errorf("square should have 1 parameter, got %d", square.Parameters)
	}
}

func TestExtract_GoErrorHandling(t *testing.T) {
	source := `package store

import "os"

func load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func ignore(path string) []byte {
	data, _ := os.ReadFile(path)
	return data
}
`
	outcome := testutil.ParseSource(t, domain.LangGo, "store.go", source)

	load := testutil.FindFunction(t, outcome, "load")
	if !load.HasErrorHandling {
		t.Error("load checks err != nil and should count as handling errors")
	}
	if load.RiskyOps == 0 {
		t.Error("load calls ReadFile and should have risky operations")
	}

	ignore := testutil.FindFunction(t, outcome, "ignore")
	if ignore.HasErrorHandling {
		t.Error("ignore never checks errors")
	}
}

func TestExtract_PythonDocstringsCountAsComments(t *testing.T) {
	source := `"""Module docstring
spanning two lines."""

# a line comment
def greet(name):
    """Say hello."""
    return "hi " + name
`
	outcome := testutil.ParseSource(t, domain.LangPython, "greet.py", source)

	// Two docstring lines + one comment line + one function docstring line
	if outcome.CommentLines != 4 {
		t.Errorf("Expected 4 comment lines, got %d", outcome.CommentLines)
	}

	greet := testutil.FindFunction(t, outcome, "greet")
	if greet.Parameters != 1 {
		t.Errorf("greet should have 1 parameter, got %d", greet.Parameters)
	}
}

func TestExtract_PythonBranchesAndNesting(t *testing.T) {
	source := `def triage(x):
    if x > 100:
        for i in range(x):
            if i % 2 == 0:
                while i > 0:
                    i -= 1
    elif x > 10:
        return 1
    else:
        return 0
`
	outcome := testutil.ParseSource(t, domain.LangPython, "triage.py", source)
	fn := testutil.FindFunction(t, outcome, "triage")

	// if, for, nested if, while, elif
	if fn.Branches != 5 {
		t.Errorf("Expected 5 branches, got %d", fn.Branches)
	}
	if fn.NestingDepth != 4 {
		t.Errorf("Expected nesting depth 4, got %d", fn.NestingDepth)
	}
}

func TestExtract_RustQuestionMarkIsHandling(t *testing.T) {
	source := `use std::fs;

fn read_config(path: &str) -> Result<String, std::io::Error> {
    let text = fs::read_to_string(path)?;
    Ok(text)
}
`
	outcome := testutil.ParseSource(t, domain.LangRust, "config.rs", source)
	fn := testutil.FindFunction(t, outcome, "read_config")
	if !fn.HasErrorHandling {
		t.Error("the ? operator should count as error handling")
	}
}

func TestExtract_JavaMethods(t *testing.T) {
	source := `class Parser {
    int parse(String input, int offset) {
        try {
            return Integer.parseInt(input.substring(offset));
        } catch (NumberFormatException e) {
            return -1;
        }
    }
}
`
	outcome := testutil.ParseSource(t, domain.LangJava, "Parser.java", source)
	fn := testutil.FindFunction(t, outcome, "parse")
	if fn.Parameters != 2 {
		t.Errorf("parse should have 2 parameters, got %d", fn.Parameters)
	}
	if !fn.HasErrorHandling {
		t.Error("try/catch should count as error handling")
	}
	// catch clause counts as a branch
	if fn.Branches != 1 {
		t.Errorf("Expected 1 branch (catch), got %d", fn.Branches)
	}
}

func TestExtract_CFunctions(t *testing.T) {
	source := `#include <stdio.h>

int sum(int a, int b) {
    return a + b;
}

int classify(int x) {
    if (x > 0) {
        return 1;
    } else if (x < 0) {
        return -1;
    }
    return 0;
}
`
	outcome := testutil.ParseSource(t, domain.LangC, "math.c", source)

	if len(outcome.Functions) != 2 {
		t.Fatalf("Expected 2 functions, got %d", len(outcome.Functions))
	}
	sum := testutil.FindFunction(t, outcome, "sum")
	if sum.Parameters != 2 {
		t.Errorf("sum should have 2 parameters, got %d", sum.Parameters)
	}
	classify := testutil.FindFunction(t, outcome, "classify")
	if classify.Branches != 2 {
		t.Errorf("classify should have 2 branches, got %d", classify.Branches)
	}
}

func TestExtract_DivisionIsRiskyEverywhere(t *testing.T) {
	tests := []struct {
		lang   domain.Language
		path   string
		source string
	}{
		{domain.LangPython, "ratio.py", "def ratio(a, b):\n    return a / b\n"},
		{domain.LangJavaScript, "ratio.js", "function ratio(a, b) {\n  return a / b;\n}\n"},
		{domain.LangGo, "ratio.go", "package m\n\nfunc ratio(a, b int) int {\n\treturn a / b\n}\n"},
		{domain.LangJava, "Ratio.java", "class M {\n    int ratio(int a, int b) {\n        return a / b;\n    }\n}\n"},
		{domain.LangC, "ratio.c", "int ratio(int a, int b) {\n    return a / b;\n}\n"},
		{domain.LangRust, "ratio.rs", "fn ratio(a: i64, b: i64) -> i64 {\n    a / b\n}\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			outcome := testutil.ParseSource(t, tt.lang, tt.path, tt.source)
			fn := testutil.FindFunction(t, outcome, "ratio")
			if fn.RiskyOps == 0 {
				t.Error("Division should count as a risky operation")
			}
		})
	}

	// Multiplication is not risky; the operator check must stay exact
	outcome := testutil.ParseSource(t, domain.LangPython, "area.py",
		"def area(a, b):\n    return a * b\n")
	fn := testutil.FindFunction(t, outcome, "area")
	if fn.RiskyOps != 0 {
		t.Errorf("Multiplication should not be risky, got %d", fn.RiskyOps)
	}
}

func TestExtract_SyntaxErrorFails(t *testing.T) {
	registry := parser.NewRegistry()
	extractor, ok := registry.ForLanguage(domain.LangGo)
	if !ok {
		t.Fatal("No Go extractor")
	}

	outcome := extractor.Extract(&domain.SourceUnit{
		Path:     "broken.go",
		Language: domain.LangGo,
		Content:  []byte("package main\n\nfunc broken( {\n"),
	})

	if !outcome.Failed {
		t.Fatal("Expected failed outcome for broken source")
	}
	if outcome.Diagnostic == "" {
		t.Error("Failed outcome should carry a diagnostic")
	}
	if !strings.Contains(outcome.Diagnostic, "line") {
		t.Errorf("Diagnostic should name a line, got %q", outcome.Diagnostic)
	}
	if len(outcome.Functions) != 0 {
		t.Error("Failed outcome should carry no functions")
	}
}

func TestExtract_LineCounts(t *testing.T) {
	source := "// comment\n\nfunction f() {\n  return 1;\n}\n"
	outcome := testutil.ParseSource(t, domain.LangJavaScript, "f.js", source)

	if outcome.TotalLines != 5 {
		t.Errorf("Expected 5 total lines, got %d", outcome.TotalLines)
	}
	if outcome.BlankLines != 1 {
		t.Errorf("Expected 1 blank line, got %d", outcome.BlankLines)
	}
	if outcome.CommentLines != 1 {
		t.Errorf("Expected 1 comment line, got %d", outcome.CommentLines)
	}
	if outcome.Unit.Lines != outcome.TotalLines {
		t.Errorf("Unit.Lines = %d, want %d", outcome.Unit.Lines, outcome.TotalLines)
	}
}

func TestExtract_NestedFunctionsGetOwnRecords(t *testing.T) {
	source := `function outer() {
  function inner() {
    if (true) { return 1; }
  }
  return inner;
}
`
	outcome := testutil.ParseSource(t, domain.LangJavaScript, "nested.js", source)

	if len(outcome.Functions) != 2 {
		t.Fatalf("Expected 2 functions, got %d", len(outcome.Functions))
	}
	outer := testutil.FindFunction(t, outcome, "outer")
	if outer.Branches != 0 {
		t.Errorf("outer should not inherit inner's branches, got %d", outer.Branches)
	}
	inner := testutil.FindFunction(t, outcome, "inner")
	if inner.Branches != 1 {
		t.Errorf("inner should have 1 branch, got %d", inner.Branches)
	}
}
