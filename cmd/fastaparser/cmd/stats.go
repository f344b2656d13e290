package cmd

import (
	"fmt"

	"github.com/AvirFrog/fasta-parser/pkg/fasta"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Summarize the records in a FASTA file",
	Long: `Stream a FASTA file and print record count and sequence length statistics.

Records are visited one at a time, so file size is not a constraint.

Example:
  fastaparser stats genome.fa.zst`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		r, err := fasta.Parse(path)
		if err != nil {
			logger.Fatal("cannot open input", "path", path, "err", err)
		}
		defer r.Close()

		var count, total, min, max int
		for r.Next() {
			n := r.Record().Len()
			count++
			total += n
			if count == 1 || n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		if err := r.Err(); err != nil {
			logger.Fatal("parse failed", "path", path, "err", err)
		}

		fmt.Printf("records:        %d\n", count)
		fmt.Printf("total residues: %d\n", total)
		if count > 0 {
			fmt.Printf("min length:     %d\n", min)
			fmt.Printf("max length:     %d\n", max)
			fmt.Printf("mean length:    %.1f\n", float64(total)/float64(count))
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
