package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess       = 0
	ExitInterpolation = 1
	ExitUsageError    = 2
)

var rootCmd = &cobra.Command{
	Use:   "subtext",
	Short: "Variable interpolation with redactable output",
	Long:  "Subtext renders templates by interpolating [[variable]] placeholders and records replacers so the substituted values can be masked out of derived text.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(redactCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print subtext version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "subtext version %s\n", version)
	},
}
