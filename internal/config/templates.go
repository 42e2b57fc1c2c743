package config

import (
	"gopkg.in/yaml.v3"

	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// ProjectType represents the kind of codebase being analyzed
type ProjectType string

const (
	ProjectTypePolyglot ProjectType = "polyglot"
	ProjectTypeFrontend ProjectType = "frontend"
	ProjectTypePython   ProjectType = "python"
	ProjectTypeGo       ProjectType = "go"
	ProjectTypeSystems  ProjectType = "systems"
)

// ProjectPreset holds discovery presets for different project types
type ProjectPreset struct {
	IncludePatterns []string
	ExcludePatterns []string
}

// GetProjectPresets returns presets for different project types. The
// exclude patterns extend the defaults rather than replacing them.
func GetProjectPresets() map[ProjectType]ProjectPreset {
	return map[ProjectType]ProjectPreset{
		ProjectTypePolyglot: {
			IncludePatterns: []string{},
			ExcludePatterns: []string{},
		},
		ProjectTypeFrontend: {
			IncludePatterns: []string{
				"**/*.js",
				"**/*.jsx",
				"**/*.ts",
				"**/*.tsx",
			},
			ExcludePatterns: []string{
				"**/.next/**",
				"**/storybook-static/**",
				"**/*.stories.*",
			},
		},
		ProjectTypePython: {
			IncludePatterns: []string{
				"**/*.py",
			},
			ExcludePatterns: []string{
				"**/.tox/**",
				"**/site-packages/**",
				"**/*.egg-info/**",
			},
		},
		ProjectTypeGo: {
			IncludePatterns: []string{
				"**/*.go",
			},
			ExcludePatterns: []string{
				"**/testdata/**",
				"**/*_mock.go",
			},
		},
		ProjectTypeSystems: {
			IncludePatterns: []string{
				"**/*.c",
				"**/*.h",
				"**/*.cpp",
				"**/*.cc",
				"**/*.hpp",
				"**/*.rs",
				"**/*.java",
			},
			ExcludePatterns: []string{
				"**/cmake-build-*/**",
				"**/third_party/**",
			},
		},
	}
}

// GetMinimalConfigTemplate returns a short config with essential options only
func GetMinimalConfigTemplate() string {
	return `# ` + constants.ToolName + ` configuration
output:
  # terminal, markdown, or json
  format: terminal
  # zh-CN or en-US
  language: ` + constants.ReportLangZH + `
  top_files: 10
analysis:
  skip_index_files: true
  respect_gitignore: true
`
}

// GetFullConfigTemplate renders the complete default configuration for a
// project type and report language
func GetFullConfigTemplate(projectType ProjectType, reportLang string) string {
	cfg := DefaultConfig()
	cfg.ApplyPreset(projectType)
	if reportLang != "" {
		cfg.Output.Language = reportLang
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return GetMinimalConfigTemplate()
	}
	header := "# " + constants.ToolName + " configuration\n" +
		"# Generated by '" + constants.ToolName + " init'\n\n"
	return header + string(data)
}

// ApplyPreset merges a project preset into the config
func (c *Config) ApplyPreset(projectType ProjectType) {
	preset, ok := GetProjectPresets()[projectType]
	if !ok {
		return
	}
	if len(preset.IncludePatterns) > 0 {
		c.Analysis.IncludePatterns = preset.IncludePatterns
	}
	c.Analysis.ExcludePatterns = append(c.Analysis.ExcludePatterns, preset.ExcludePatterns...)
}
