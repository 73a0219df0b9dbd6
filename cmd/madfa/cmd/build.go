package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-madfa/madfa"
	"github.com/go-madfa/madfa/internal/wordsource"
)

var buildCmd = &cobra.Command{
	Use:   "build <words-file>",
	Short: "Build an automaton from a sorted word file and report its size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildFromFile(args[0])
		if err != nil {
			logger.Error("build failed", zap.String("file", args[0]), zap.Error(err))
			return err
		}

		fmt.Printf("words: %d\nstates: %d\n", a.Count(), a.CountStates())
		return nil
	},
}

// buildFromFile reads path as a sorted, newline-delimited word file and
// builds the automaton it describes. It is shared by every subcommand that
// needs one.
func buildFromFile(path string) (*madfa.Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src := wordsource.New(f)
	a, err := madfa.Build(src)
	if err != nil {
		return nil, err
	}
	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return a, nil
}
