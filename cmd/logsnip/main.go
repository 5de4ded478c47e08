// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the logsnip CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/logsnip/internal/snip"
	"github.com/pdiddy/logsnip/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// The extraction target is fixed: the writeLog method block in the
// Logger.js of the current directory. The start marker matches anywhere in
// a line; the end marker is a prefix of the trimmed line, which bounds the
// block at the sibling writeLogs method.
const (
	sourceFile    = "Logger.js"
	startMarker   = "static async writeLog"
	endMarkerLine = "static async writeLogs"
)

// rootCmd is the base command for the logsnip CLI. Running it performs the
// extraction; there are no extraction options.
var rootCmd = &cobra.Command{
	Use:   "logsnip",
	Short: "Extract the writeLog method block from Logger.js",
	Long: `logsnip reads the Logger.js in the current directory, scans for the
writeLog method, and prints every line from its declaration up to the
writeLogs declaration that follows it (or the end of the file). The block
is written to stdout so it can be piped into review tooling.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg types.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}

		block, err := snip.FromFile(sourceFile, snip.Markers{
			StartContains: startMarker,
			EndPrefix:     endMarkerLine,
		})
		if err != nil {
			return err
		}

		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "%s: block at lines %d-%d (%d lines)\n",
				sourceFile, block.Start+1, block.End, len(block.Lines))
		}

		fmt.Fprintln(cmd.OutOrStdout(), block.Text())
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./logsnip.yaml or ~/.config/logsnip/config.yaml)")
	rootCmd.Flags().Bool("verbose", false, "print scan diagnostics to stderr")
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("logsnip")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "logsnip"))
		}
	}

	viper.SetEnvPrefix("LOGSNIP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
