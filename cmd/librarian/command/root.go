package command

// root.go defines the root command for the librarian application and the
// global flags shared by all subcommands.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dataFile string // import file that seeds the in-memory registries
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "librarian",
	Short: "librarian - a small library circulation ledger",
	Long: `librarian keeps a catalog of book titles, registered patrons, and a loan
log with late-fee accrual. All state lives in memory for the duration of one
command; the --data flag points at the JSON import file that seeds it.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "sample_data.json", "path to the JSON import file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}
