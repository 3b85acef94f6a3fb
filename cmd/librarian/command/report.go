package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openshelf/circulation-ledger-go/report"
)

var (
	reportMonth int
	reportYear  int
	reportOut   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the monthly loan report",
	Long:  `Render the loan activity for one month followed by the statistics snapshot, to stdout or to a file with --out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reportMonth < 1 || reportMonth > 12 {
			return fmt.Errorf("invalid month %d (expected 1-12)", reportMonth)
		}

		library, err := openLibrary()
		if err != nil {
			return err
		}

		month := time.Month(reportMonth)

		if reportOut != "" {
			if exportErr := report.ExportMonthly(library, month, reportYear, time.Now(), reportOut); exportErr != nil {
				return exportErr
			}

			fmt.Printf("Report exported to '%s'.\n", reportOut)

			return nil
		}

		fmt.Println()
		fmt.Print(report.Monthly(library, month, reportYear, time.Now()))

		return nil
	},
}

func init() {
	now := time.Now()
	reportCmd.Flags().IntVar(&reportMonth, "month", int(now.Month()), "report month (1-12)")
	reportCmd.Flags().IntVar(&reportYear, "year", now.Year(), "report year")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "write the report to this file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}
