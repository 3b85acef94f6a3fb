package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openshelf/circulation-ledger-go/sampledata"
)

var sampleDataOut string

var sampleDataCmd = &cobra.Command{
	Use:   "sample-data",
	Short: "Write a sample import file",
	Long:  `Write a small deterministic JSON import file (three books, two patrons) to seed the other commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sampledata.WriteFile(sampleDataOut); err != nil {
			return err
		}

		fmt.Printf("Sample data written to '%s'.\n", sampleDataOut)

		return nil
	},
}

func init() {
	sampleDataCmd.Flags().StringVar(&sampleDataOut, "out", sampledata.DefaultFileName, "output path for the sample import file")
	rootCmd.AddCommand(sampleDataCmd)
}
