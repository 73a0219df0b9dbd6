package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var queryCmd = &cobra.Command{
	Use:   "query <words-file> <word>",
	Short: "Test whether word is stored in the automaton built from words-file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildFromFile(args[0])
		if err != nil {
			logger.Error("query failed", zap.String("file", args[0]), zap.Error(err))
			return err
		}

		word := args[1]
		if !a.Contains(word) {
			fmt.Printf("%q: not found\n", word)
			return nil
		}

		fmt.Printf("%q: found, index %d\n", word, a.IndexOf(word))
		return nil
	},
}
