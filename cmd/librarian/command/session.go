package command

import (
	"fmt"

	"github.com/openshelf/circulation-ledger-go/circulation"
	"github.com/openshelf/circulation-ledger-go/importer"
)

// openLibrary builds a fresh Library and seeds it from the --data file.
// Skipped records are reported on stderr through the logger but do not fail
// the session.
func openLibrary() (*circulation.Library, error) {
	library, err := circulation.NewLibrary(circulation.WithLogger(newLogger()))
	if err != nil {
		return nil, err
	}

	result, err := importer.ImportFile(library, dataFile)
	if err != nil {
		return nil, err
	}

	if len(result.Issues) > 0 {
		fmt.Printf("Imported %d books and %d patrons (%d records skipped, see log).\n",
			result.BooksImported, result.PatronsImported, len(result.Issues))
	} else {
		fmt.Printf("Imported %d books and %d patrons.\n", result.BooksImported, result.PatronsImported)
	}

	return library, nil
}

func printStatistics(stats circulation.Statistics) {
	fmt.Printf("- Book Titles: %d\n", stats.BookTitleCount)
	fmt.Printf("- Available Copies: %d\n", stats.TotalAvailableCopies)
	fmt.Printf("- Registered Patrons: %d\n", stats.PatronCount)
	fmt.Printf("- Open Loans: %d\n", stats.OpenLoanCount)
	fmt.Printf("- Outstanding Fees: %.2f\n", stats.TotalOutstandingFees)
}
