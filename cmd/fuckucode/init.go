package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Yzy888666/fuckucodepy/internal/config"
	"github.com/Yzy888666/fuckucodepy/internal/constants"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a configuration file",
		Long: `Generate a documented configuration file with sensible defaults.

By default, creates ` + constants.ConfigFileName + ` in the current directory.
Use --interactive for a guided setup wizard.

Examples:
  # Create ` + constants.ConfigFileName + ` in current directory
  fuck-u-code init

  # Custom output path
  fuck-u-code init --config custom.yaml

  # Overwrite existing file
  fuck-u-code init --force

  # Generate smaller config with essential options only
  fuck-u-code init --minimal

  # Interactive setup wizard
  fuck-u-code init --interactive
  fuck-u-code init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", constants.ConfigFileName,
		"Output path for the config file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing config file")
	cmd.Flags().Bool("minimal", false,
		"Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false,
		"Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	projectType := config.ProjectTypePolyglot
	reportLang := constants.ReportLangZH

	if interactive {
		var err error
		projectType, reportLang, configPath, err = runInteractiveSetup(configPath)
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	var content string
	if minimal {
		content = config.GetMinimalConfigTemplate()
	} else {
		content = config.GetFullConfigTemplate(projectType, reportLang)
	}

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Printf("\nRun '%s analyze .' to rate your project.\n", constants.ToolName)

	return nil
}

func runInteractiveSetup(defaultConfigPath string) (config.ProjectType, string, string, error) {
	fmt.Println()
	fmt.Println(constants.ToolName + " Configuration Setup")
	fmt.Println("==============================")
	fmt.Println()

	projectTypes := []struct {
		Label string
		Value config.ProjectType
	}{
		{"Mixed languages", config.ProjectTypePolyglot},
		{"Frontend (JS/TS)", config.ProjectTypeFrontend},
		{"Python", config.ProjectTypePython},
		{"Go", config.ProjectTypeGo},
		{"Systems (C/C++/Rust/Java)", config.ProjectTypeSystems},
	}

	projectTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	projectPrompt := promptui.Select{
		Label:     "What type of project is this?",
		Items:     projectTypes,
		Templates: projectTemplates,
	}

	projectIdx, _, err := projectPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("project selection cancelled: %w", err)
	}
	selectedProject := projectTypes[projectIdx].Value

	fmt.Println()

	languages := []struct {
		Label string
		Value string
	}{
		{"中文 (original flavor)", constants.ReportLangZH},
		{"English", constants.ReportLangEN},
	}

	languageTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	languagePrompt := promptui.Select{
		Label:     "Which language should reports use?",
		Items:     languages,
		Templates: languageTemplates,
	}

	languageIdx, _, err := languagePrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("language selection cancelled: %w", err)
	}
	selectedLanguage := languages[languageIdx].Value

	fmt.Println()

	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return selectedProject, selectedLanguage, outputPath, nil
}
