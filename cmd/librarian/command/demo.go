package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openshelf/circulation-ledger-go/report"
)

// The demo walks one full circulation cycle against the sample catalog,
// so the ISBNs and dates below match sampledata.Payload.
const (
	demoISBN       = "978-0-345-33968-3"
	demoPatronID   = "U001"
	demoLoanDate   = "2023-10-25"
	demoReturnDate = "2023-11-15"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a full circulation walkthrough",
	Long: `Seed the library from the --data file, then walk through searching the
catalog, registering a patron, issuing a loan, returning it with a late fee,
and rendering statistics and a monthly report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := openLibrary()
		if err != nil {
			return err
		}

		fmt.Println("\nSearching by title '1984':")
		for _, book := range library.SearchBooks("title", "1984") {
			fmt.Printf("- Found: %s by %s (ISBN: %s)\n", book.Title, book.Author, book.ISBN)
		}

		fmt.Println("\nSearching by author 'Aldous Huxley':")
		for _, book := range library.SearchBooks("author", "Aldous Huxley") {
			fmt.Printf("- Found: %s by %s (ISBN: %s)\n", book.Title, book.Author, book.ISBN)
		}

		fmt.Println("\nRegistering patron 'Carlos Gómez' with ID 'U003':")
		patron, err := library.RegisterPatron("Carlos Gómez", "U003")
		if err != nil {
			fmt.Println("Could not register patron:", err)
		} else {
			fmt.Printf("Patron registered: %s (ID: %s)\n", patron.Name, patron.ID)
		}

		fmt.Printf("\nIssuing loan of ISBN '%s' to patron '%s' on '%s':\n", demoISBN, demoPatronID, demoLoanDate)
		loan, err := library.IssueLoan(demoISBN, demoPatronID, demoLoanDate)
		if err != nil {
			fmt.Println("Could not issue loan:", err)
		} else {
			fmt.Printf("Loan issued: %s to %s on %s\n", loan.ISBN, loan.PatronID, loan.LoanedAt.Format("2006-01-02"))
		}

		fmt.Printf("\nReturning ISBN '%s' from patron '%s' on '%s':\n", demoISBN, demoPatronID, demoReturnDate)
		fee, err := library.ReturnLoan(demoISBN, demoPatronID, demoReturnDate)
		if err != nil {
			fmt.Println("Could not return loan:", err)
		} else {
			fmt.Printf("Return processed. Fee due: %.2f\n", fee)
		}

		fmt.Println("\nLibrary statistics:")
		printStatistics(library.Statistics())

		fmt.Println("\nMonthly report for November 2023:")
		fmt.Print(report.Monthly(library, time.November, 2023, time.Now()))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
