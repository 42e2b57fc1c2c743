package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

// Config represents the main configuration structure
type Config struct {
	// Analysis holds source discovery and scheduling configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Output holds report formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`
}

// AnalysisConfig holds source discovery and scheduling configuration
type AnalysisConfig struct {
	// IncludePatterns restricts analysis to matching paths; empty means all
	// supported source files
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns removes matching paths from analysis
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// SkipIndexFiles drops barrel files (index.js, index.ts, __init__.py)
	// that usually hold only re-exports
	SkipIndexFiles bool `json:"skip_index_files" mapstructure:"skip_index_files" yaml:"skip_index_files"`

	// RespectGitignore applies .gitignore rules during discovery
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`

	// ConcurrencyLimit caps the number of files analyzed in parallel.
	// 0 means one worker per CPU, capped at the tool maximum.
	ConcurrencyLimit int `json:"concurrency_limit" mapstructure:"concurrency_limit" yaml:"concurrency_limit"`
}

// OutputConfig holds report formatting configuration
type OutputConfig struct {
	// Format specifies the report format: terminal, markdown, json
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// Language selects the report language: zh-CN or en-US
	Language string `json:"language" mapstructure:"language" yaml:"language"`

	// TopFiles limits how many worst files the report shows; 0 shows all
	TopFiles int `json:"top_files" mapstructure:"top_files" yaml:"top_files"`

	// MaxIssuesPerFile limits issue detail per file; 0 shows all
	MaxIssuesPerFile int `json:"max_issues_per_file" mapstructure:"max_issues_per_file" yaml:"max_issues_per_file"`

	// ShowBreakdown includes the per-metric score table for each file
	ShowBreakdown bool `json:"show_breakdown" mapstructure:"show_breakdown" yaml:"show_breakdown"`
}

// DefaultConfig returns the configuration used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			IncludePatterns:  []string{},
			ExcludePatterns:  DefaultExcludePatterns(),
			SkipIndexFiles:   true,
			RespectGitignore: true,
			ConcurrencyLimit: 0,
		},
		Output: OutputConfig{
			Format:           "terminal",
			Language:         constants.ReportLangZH,
			TopFiles:         constants.DefaultTopFiles,
			MaxIssuesPerFile: constants.DefaultMaxIssuesPerFile,
			ShowBreakdown:    true,
		},
	}
}

// DefaultExcludePatterns lists directories and generated files that are
// never worth scoring
func DefaultExcludePatterns() []string {
	return []string{
		"**/node_modules/**",
		"**/dist/**",
		"**/build/**",
		"**/target/**",
		"**/vendor/**",
		"**/venv/**",
		"**/.venv/**",
		"**/__pycache__/**",
		"**/.git/**",
		"**/coverage/**",
		"**/*.min.js",
		"**/*.bundle.js",
		"**/*_pb2.py",
		"**/*.pb.go",
		"**/*.generated.*",
		"**/migrations/**",
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context: when
// no path is given explicitly, the config file is discovered from the
// analyzed directory upward, then from the usual user locations.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses one configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A fresh viper instance per load avoids shared global state
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common
// locations, starting at the analyzed path and walking up to the
// filesystem root, then falling back to user-level locations
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		constants.ConfigFileName,
		"fuckucode.yml",
		".fuckucode.yaml",
		".fuckucode.yml",
	}

	if targetPath != "" {
		if absPath, err := filepath.Abs(targetPath); err == nil {
			if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}
			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				parent := filepath.Dir(dir)
				if parent == dir || dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, "fuckucode"), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", "fuckucode"), candidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "terminal", "markdown", "json":
	default:
		return fmt.Errorf("invalid output.format %q, must be one of: terminal, markdown, json", c.Output.Format)
	}

	switch c.Output.Language {
	case constants.ReportLangZH, constants.ReportLangEN:
	default:
		return fmt.Errorf("invalid output.language %q, must be one of: %s, %s",
			c.Output.Language, constants.ReportLangZH, constants.ReportLangEN)
	}

	if c.Output.TopFiles < 0 {
		return fmt.Errorf("output.top_files must be >= 0, got %d", c.Output.TopFiles)
	}

	if c.Output.MaxIssuesPerFile < 0 {
		return fmt.Errorf("output.max_issues_per_file must be >= 0, got %d", c.Output.MaxIssuesPerFile)
	}

	if c.Analysis.ConcurrencyLimit < 0 {
		return fmt.Errorf("analysis.concurrency_limit must be >= 0, got %d", c.Analysis.ConcurrencyLimit)
	}
	if c.Analysis.ConcurrencyLimit > constants.MaxConcurrency {
		return fmt.Errorf("analysis.concurrency_limit must be <= %d, got %d",
			constants.MaxConcurrency, c.Analysis.ConcurrencyLimit)
	}

	return nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("analysis", config.Analysis)
	v.Set("output", config.Output)

	return v.WriteConfig()
}
