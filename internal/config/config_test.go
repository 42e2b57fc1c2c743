package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Format != "terminal" {
		t.Errorf("Default format = %q, want terminal", cfg.Output.Format)
	}
	if cfg.Output.Language != constants.ReportLangZH {
		t.Errorf("Default language = %q, want %s", cfg.Output.Language, constants.ReportLangZH)
	}
	if cfg.Output.TopFiles != constants.DefaultTopFiles {
		t.Errorf("Default top files = %d", cfg.Output.TopFiles)
	}
	if !cfg.Analysis.SkipIndexFiles {
		t.Error("Index files should be skipped by default")
	}
	if len(cfg.Analysis.ExcludePatterns) == 0 {
		t.Error("Default excludes should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, constants.ConfigFileName)
	content := `output:
  format: markdown
  language: en-US
  top_files: 3
analysis:
  skip_index_files: false
  concurrency_limit: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Output.Format != "markdown" {
		t.Errorf("Format = %q", cfg.Output.Format)
	}
	if cfg.Output.Language != constants.ReportLangEN {
		t.Errorf("Language = %q", cfg.Output.Language)
	}
	if cfg.Output.TopFiles != 3 {
		t.Errorf("TopFiles = %d", cfg.Output.TopFiles)
	}
	if cfg.Analysis.SkipIndexFiles {
		t.Error("SkipIndexFiles should be overridden to false")
	}
	if cfg.Analysis.ConcurrencyLimit != 4 {
		t.Errorf("ConcurrencyLimit = %d", cfg.Analysis.ConcurrencyLimit)
	}
	// Unset fields keep their defaults
	if cfg.Output.MaxIssuesPerFile != constants.DefaultMaxIssuesPerFile {
		t.Errorf("MaxIssuesPerFile should default, got %d", cfg.Output.MaxIssuesPerFile)
	}
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/fuckucode.yaml"); err == nil {
		t.Error("Explicitly named missing config should error")
	}
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := loadConfigFromFile("")
	if err != nil {
		t.Fatalf("loadConfigFromFile: %v", err)
	}
	if cfg.Output.Format != "terminal" {
		t.Error("Empty path should yield defaults")
	}
}

func TestLoadConfigWithTarget_DiscoversUpward(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "output:\n  top_files: 7\n"
	if err := os.WriteFile(filepath.Join(root, constants.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigWithTarget("", sub)
	if err != nil {
		t.Fatalf("LoadConfigWithTarget: %v", err)
	}
	if cfg.Output.TopFiles != 7 {
		t.Errorf("Config was not discovered upward, top_files = %d", cfg.Output.TopFiles)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad format", func(c *Config) { c.Output.Format = "pdf" }},
		{"bad language", func(c *Config) { c.Output.Language = "fr-FR" }},
		{"negative top files", func(c *Config) { c.Output.TopFiles = -1 }},
		{"negative issues", func(c *Config) { c.Output.MaxIssuesPerFile = -2 }},
		{"negative concurrency", func(c *Config) { c.Analysis.ConcurrencyLimit = -1 }},
		{"excessive concurrency", func(c *Config) { c.Analysis.ConcurrencyLimit = constants.MaxConcurrency + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	cfg := DefaultConfig()
	cfg.Output.Format = "json"
	cfg.Output.TopFiles = 42

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Output.Format != "json" || loaded.Output.TopFiles != 42 {
		t.Errorf("Round trip lost values: %+v", loaded.Output)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	before := len(cfg.Analysis.ExcludePatterns)
	cfg.ApplyPreset(ProjectTypePython)

	if len(cfg.Analysis.IncludePatterns) == 0 {
		t.Error("Python preset should set include patterns")
	}
	if len(cfg.Analysis.ExcludePatterns) <= before {
		t.Error("Preset excludes should extend the defaults")
	}
}

func TestGetFullConfigTemplate_IsValidYAML(t *testing.T) {
	content := GetFullConfigTemplate(ProjectTypeGo, constants.ReportLangEN)
	if !strings.Contains(content, "analysis:") || !strings.Contains(content, "output:") {
		t.Errorf("Template missing sections:\n%s", content)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, constants.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Generated template should load back: %v", err)
	}
	if cfg.Output.Language != constants.ReportLangEN {
		t.Errorf("Template language = %q", cfg.Output.Language)
	}
}
