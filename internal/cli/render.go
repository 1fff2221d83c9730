package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/subtext"
	"github.com/dshills/subtext/internal/vars"
	"github.com/spf13/cobra"
)

// Render flags
var (
	flagStyle          string
	flagEnv            bool
	flagEnvFiles       []string
	flagVarFiles       []string
	flagSets           []string
	flagKeepUnresolved bool
	flagRedacted       bool
	flagOut            string
	flagReplacersOut   string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Interpolate variables into a template from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := subtext.ParseStyle(flagStyle)
		if err != nil {
			return err
		}

		input, err := readInput(args)
		if err != nil {
			return err
		}

		variables, err := vars.Load(vars.Sources{
			Env:      flagEnv,
			EnvFiles: flagEnvFiles,
			VarFiles: flagVarFiles,
			Sets:     flagSets,
		})
		if err != nil {
			return err
		}

		in := subtext.Interpolator{Style: style, KeepUnresolved: flagKeepUnresolved}
		output, replacers, err := in.Run(input, variables)
		if err != nil {
			// Interpolation errors name keys, never values, so they are
			// safe to print.
			fmt.Fprintf(os.Stderr, "subtext: %v\n", err)
			exitCode = ExitInterpolation
			return nil
		}

		if err := writeOutput(flagOut, output); err != nil {
			return err
		}

		if flagReplacersOut != "" {
			if err := writeReplacers(flagReplacersOut, replacers); err != nil {
				return err
			}
		}

		if flagRedacted {
			fmt.Fprintln(os.Stderr, replacers.Redact(output))
		}

		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagStyle, "style", "brackets", "Delimiter style (brackets, curly)")
	renderCmd.Flags().BoolVar(&flagEnv, "env", false, "Use the process environment as a variable source")
	renderCmd.Flags().StringArrayVar(&flagEnvFiles, "env-file", nil, "Dotenv file to load variables from (repeatable)")
	renderCmd.Flags().StringArrayVar(&flagVarFiles, "vars", nil, "JSON or TOML variables file (repeatable)")
	renderCmd.Flags().StringArrayVar(&flagSets, "set", nil, "Variable as key=value (repeatable, highest precedence)")
	renderCmd.Flags().BoolVar(&flagKeepUnresolved, "keep-unresolved", false, "Leave unknown placeholders intact instead of failing")
	renderCmd.Flags().BoolVar(&flagRedacted, "redacted", false, "Also print the redacted output to stderr")
	renderCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().StringVar(&flagReplacersOut, "replacers-out", "", "Write the replacer list as JSON for later redaction")
}

// readInput reads the template from the named file, or from stdin when no
// file (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// writeOutput writes the rendered text verbatim to path, or to stdout when
// path is empty.
func writeOutput(path, output string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, output)
		return err
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// writeReplacers persists the replacer list as JSON. The file holds the live
// substituted values, so it is created owner-readable only.
func writeReplacers(path string, replacers subtext.Replacers) error {
	data, err := json.MarshalIndent(replacers, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing replacers: %w", err)
	}
	return nil
}
