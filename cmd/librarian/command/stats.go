package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the library statistics snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := openLibrary()
		if err != nil {
			return err
		}

		fmt.Println("\nLibrary statistics:")
		printStatistics(library.Statistics())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
