/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/AvirFrog/fasta-parser/pkg/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file with default settings.

The file lands at --config when given, otherwise at the per-user default
location.

Examples:
  fastaparser init
  fastaparser init --wrap 60 --config ./fastaparser.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		wrap, _ := cmd.Flags().GetInt("wrap")
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", path)
			return
		}

		written, err := config.BootstrapConfig(path, wrap)
		if err != nil {
			logger.Fatal("failed to write config", "path", path, "err", err)
		}

		cmd.Printf("Wrote config to %s\n", path)
		cmd.Printf("  wrap: %d\n", written.Wrap)
		cmd.Printf("  log level: %s\n", written.Logging.Level)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Int("wrap", 0, "Default sequence line width to record in the config")
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
