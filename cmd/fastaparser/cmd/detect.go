package cmd

import (
	"fmt"

	"github.com/AvirFrog/fasta-parser/pkg/compression"
	"github.com/spf13/cobra"
)

// allKinds covers the full signature table, available or not.
var allKinds = []compression.Kind{
	compression.Plain,
	compression.Gzip,
	compression.Bzip2,
	compression.Zip,
	compression.Zstandard,
	compression.LZ4,
}

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Detect the compression kind of a file",
	Long: `Detect the compression kind of a file from its leading magic bytes.

Example:
  fastaparser detect genome.fa.gz
  fastaparser detect --capabilities`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		capabilities, _ := cmd.Flags().GetBool("capabilities")

		if capabilities {
			registry := compression.Default()
			for _, kind := range allKinds {
				status := "unavailable"
				if registry.Available(kind) {
					status = "available"
				}
				fmt.Printf("%-10s %s\n", kind, status)
			}
			return
		}

		if len(args) != 1 {
			logger.Fatal("detect needs a file argument")
		}

		kind, err := compression.Detect(args[0])
		if err != nil {
			logger.Fatal("detection failed", "path", args[0], "err", err)
		}
		fmt.Println(kind)
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().Bool("capabilities", false, "List decoder availability for every compression kind")
}
