package service

import (
	"github.com/Yzy888666/fuckucodepy/domain"
	"github.com/Yzy888666/fuckucodepy/internal/config"
)

// ConfigurationLoaderImpl bridges the configuration file layer and the
// analysis request the orchestrator consumes
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// Load resolves configuration for an analysis of the given paths. An empty
// configPath triggers discovery upward from the first analyzed path.
func (c *ConfigurationLoaderImpl) Load(configPath string, paths []string) (*config.Config, error) {
	target := ""
	if len(paths) > 0 {
		target = paths[0]
	}
	cfg, err := config.LoadConfigWithTarget(configPath, target)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return cfg, nil
}

// BuildRequest converts loaded configuration into an analysis request
func (c *ConfigurationLoaderImpl) BuildRequest(cfg *config.Config, paths []string, configPath string) domain.AnalyzeRequest {
	return domain.AnalyzeRequest{
		Paths:            paths,
		IncludePatterns:  cfg.Analysis.IncludePatterns,
		ExcludePatterns:  cfg.Analysis.ExcludePatterns,
		SkipIndexFiles:   cfg.Analysis.SkipIndexFiles,
		RespectGitignore: cfg.Analysis.RespectGitignore,
		TopFiles:         cfg.Output.TopFiles,
		MaxIssuesPerFile: cfg.Output.MaxIssuesPerFile,
		ConcurrencyLimit: cfg.Analysis.ConcurrencyLimit,
		ConfigPath:       configPath,
	}
}
