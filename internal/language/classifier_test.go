package language

import (
	"testing"

	"github.com/Yzy888666/fuckucodepy/domain"
)

func TestClassify_ByExtension(t *testing.T) {
	tests := []struct {
		path string
		lang domain.Language
	}{
		{"main.py", domain.LangPython},
		{"types.pyi", domain.LangPython},
		{"app.js", domain.LangJavaScript},
		{"app.jsx", domain.LangJavaScript},
		{"server.mjs", domain.LangJavaScript},
		{"app.ts", domain.LangTypeScript},
		{"view.tsx", domain.LangTypeScript},
		{"Main.java", domain.LangJava},
		{"lib.c", domain.LangC},
		{"lib.h", domain.LangC},
		{"engine.cpp", domain.LangCPP},
		{"engine.hpp", domain.LangCPP},
		{"main.go", domain.LangGo},
		{"lib.rs", domain.LangRust},
	}

	for _, tt := range tests {
		if got := Classify(tt.path, nil); got != tt.lang {
			t.Errorf("Classify(%q) = %s, want %s", tt.path, got, tt.lang)
		}
	}
}

func TestClassify_UnknownExtension(t *testing.T) {
	// An unknown extension is never sniffed; the extension is authoritative
	got := Classify("README.md", []byte("def main():\n    pass\n"))
	if got != domain.LangUnsupported {
		t.Errorf("Classify(README.md) = %s, want unsupported", got)
	}
}

func TestClassify_Shebang(t *testing.T) {
	tests := []struct {
		content string
		lang    domain.Language
	}{
		{"#!/usr/bin/env python3\nprint('hi')\n", domain.LangPython},
		{"#!/usr/bin/python\nprint('hi')\n", domain.LangPython},
		{"#!/usr/bin/env node\nconsole.log('hi')\n", domain.LangJavaScript},
	}

	for _, tt := range tests {
		if got := Classify("script", []byte(tt.content)); got != tt.lang {
			t.Errorf("Classify(script, %q) = %s, want %s", tt.content[:20], got, tt.lang)
		}
	}
}

func TestClassify_ContentSniffing(t *testing.T) {
	pySource := "import os\n\ndef main():\n    pass\n"
	if got := Classify("run", []byte(pySource)); got != domain.LangPython {
		t.Errorf("Python content sniffing failed, got %s", got)
	}

	goSource := "package main\n\nfunc main() {}\n"
	if got := Classify("tool", []byte(goSource)); got != domain.LangGo {
		t.Errorf("Go content sniffing failed, got %s", got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	content := []byte("#!/usr/bin/env python3\nx = 1\n")
	first := Classify("script", content)
	for i := 0; i < 10; i++ {
		if got := Classify("script", content); got != first {
			t.Fatalf("Classify is not deterministic: %s vs %s", first, got)
		}
	}
}

func TestClassifyPath_ExtensionOnly(t *testing.T) {
	if got := ClassifyPath("pkg/mod.rs"); got != domain.LangRust {
		t.Errorf("ClassifyPath(mod.rs) = %s, want rust", got)
	}
	if got := ClassifyPath("bin/script"); got != domain.LangUnsupported {
		t.Errorf("ClassifyPath(script) = %s, want unsupported", got)
	}
}
