package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yzy888666/fuckucodepy/internal/constants"
	"github.com/Yzy888666/fuckucodepy/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   constants.ToolName,
		Short: constants.ToolName + " - multi-language code smell analyzer",
		Long: constants.ToolName + ` rates how much a codebase stinks.
It extracts structural facts from eight languages, scores seven weighted
quality metrics, and ranks the worst files with brutally honest commentary.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Handle custom exit codes from check command
		if exitErr, ok := err.(*CheckExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("%s version %s\n", constants.ToolName, version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
