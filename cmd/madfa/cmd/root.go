// Package cmd holds the madfa CLI's cobra subcommands, one file per
// subcommand.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "madfa",
	Short: "Build and query a minimal acyclic DFA over a sorted word list",
	Long: `madfa builds a Minimal Acyclic Deterministic Finite-State Automaton
from a sorted, newline-delimited word file and lets you query it: test
membership, list every stored word, or find which stored words are
prefixes of a given input.`,
	SilenceUsage: true,
}

// Execute runs the root command. It is the single entry point main calls.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.madfa.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(prefixesCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".madfa")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MADFA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "madfa: could not read config file: %v\n", err)
		}
	}

	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var zapErr error
	if viper.GetString("log-level") == "debug" {
		logger, zapErr = zap.NewDevelopment()
	} else {
		logger, zapErr = zap.NewProduction()
	}
	if zapErr != nil {
		logger = zap.NewNop()
	}
}
