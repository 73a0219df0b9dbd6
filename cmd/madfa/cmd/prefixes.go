package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var prefixesCmd = &cobra.Command{
	Use:   "prefixes <words-file> <input>",
	Short: "List every stored word that is a prefix of input",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildFromFile(args[0])
		if err != nil {
			logger.Error("prefixes failed", zap.String("file", args[0]), zap.Error(err))
			return err
		}

		matches := a.FindAllPrefixesOf(args[1])
		if len(matches) == 0 {
			fmt.Println("no stored word is a prefix of that input")
			return nil
		}

		for _, m := range matches {
			fmt.Printf("%q (index %d)\n", m.Word, m.Index)
		}
		return nil
	},
}
