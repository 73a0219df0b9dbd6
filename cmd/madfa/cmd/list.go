package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var listCmd = &cobra.Command{
	Use:   "list <words-file>",
	Short: "Enumerate every word stored in the automaton, in lexicographic order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildFromFile(args[0])
		if err != nil {
			logger.Error("list failed", zap.String("file", args[0]), zap.Error(err))
			return err
		}

		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()

		e := a.Iterate()
		for e.Advance() {
			fmt.Fprintln(w, e.Current())
		}
		return nil
	},
}
