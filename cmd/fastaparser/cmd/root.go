/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AvirFrog/fasta-parser/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Shared by the subcommands; set up in PersistentPreRunE. Records go to
// stdout, diagnostics to the stderr logger.
var (
	cfg    *config.Config
	logger *log.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fastaparser",
	Short: "Compression-transparent FASTA toolkit",
	Long: `fastaparser reads FASTA files that may be plain text or compressed with
gzip, bzip2, zip, zstandard or lz4, and streams their records through
detection, statistics, reformatting and extraction commands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = log.New(os.Stderr)

		cfgPath, _ := cmd.Flags().GetString("config")
		explicit := cfgPath != ""
		if cfgPath == "" {
			cfgPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(cfgPath) {
			loaded, err := config.LoadConfig(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		} else {
			if explicit {
				logger.Warn("config file not found, using defaults", "path", cfgPath)
			}
			cfg = config.DefaultConfig()
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			switch strings.ToLower(cfg.Logging.Level) {
			case "debug":
				logger.SetLevel(log.DebugLevel)
			case "warn", "warning":
				logger.SetLevel(log.WarnLevel)
			case "error":
				logger.SetLevel(log.ErrorLevel)
			default:
				logger.SetLevel(log.InfoLevel)
			}
		}

		logger.Debug("configuration ready", "path", cfgPath, "wrap", cfg.Wrap, "level", cfg.Logging.Level)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: ~/.config/fastaparser/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
