package cmd

import (
	"fmt"

	"github.com/AvirFrog/fasta-parser/pkg/fasta"
	"github.com/spf13/cobra"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file> <id>",
	Short: "Print one record selected by id",
	Long: `Load a FASTA file into an id-keyed table and print the record with the
given id. Duplicate ids resolve to the last record in file order. The whole
file is held in memory; prefer stats or reformat for very large inputs.

Example:
  fastaparser extract proteins.fa.bz2 NP_055309.2`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		path, id := args[0], args[1]

		r, err := fasta.Parse(path)
		if err != nil {
			logger.Fatal("cannot open input", "path", path, "err", err)
		}
		defer r.Close()

		records, err := fasta.ToMap(r)
		if err != nil {
			logger.Fatal("parse failed", "path", path, "err", err)
		}

		record, ok := records[id]
		if !ok {
			logger.Fatal("id not found", "path", path, "id", id, "records", len(records))
		}
		fmt.Print(record.Format(cfg.Wrap))
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
