package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dshills/subtext"
	"github.com/spf13/cobra"
)

var flagReplacersFile string

var redactCmd = &cobra.Command{
	Use:   "redact [file]",
	Short: "Mask substituted values in text using a saved replacer list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}

		replacers, err := loadReplacers(flagReplacersFile)
		if err != nil {
			return err
		}

		_, err = io.WriteString(os.Stdout, subtext.Redact(text, replacers))
		return err
	},
}

func init() {
	redactCmd.Flags().StringVar(&flagReplacersFile, "replacers", "", "Replacer list JSON written by render --replacers-out")
	_ = redactCmd.MarkFlagRequired("replacers")
}

// loadReplacers reads a replacer list from the JSON form written by
// writeReplacers.
func loadReplacers(path string) (subtext.Replacers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading replacers: %w", err)
	}
	var replacers subtext.Replacers
	if err := json.Unmarshal(data, &replacers); err != nil {
		return nil, fmt.Errorf("parsing replacers %s: %w", path, err)
	}
	return replacers, nil
}
