package report

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openshelf/circulation-ledger-go/circulation"
)

// ErrExportFile is returned when the report file cannot be written.
var ErrExportFile = errors.New("cannot write report file")

const divider = "========================================"

// Monthly renders the loan activity for one month as plain text: a header,
// one block per loan issued in that month (regardless of return state), and
// the current statistics snapshot.
//
// Fees are evaluated at asOf for open loans and at the return date for
// closed ones. A closed loan therefore shows 0.00 - the final fee was
// captured by ReturnLoan when the loan closed.
func Monthly(library *circulation.Library, month time.Month, year int, asOf time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Monthly Library Report - %d/%d\n", int(month), year)
	b.WriteString(divider + "\n\n")

	loans := library.LoansInMonth(month, year)

	if len(loans) == 0 {
		b.WriteString("No loans were issued this month.\n")
	} else {
		b.WriteString("Loans issued this month:\n")

		for _, loan := range loans {
			writeLoanBlock(&b, library, loan, asOf)
		}
	}

	b.WriteString("\n" + divider + "\n")
	b.WriteString("General Statistics:\n")
	writeStatistics(&b, library.Statistics())

	return b.String()
}

// ExportMonthly renders the monthly report and writes it to the given path.
func ExportMonthly(library *circulation.Library, month time.Month, year int, asOf time.Time, path string) error {
	content := Monthly(library, month, year, asOf)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Join(ErrExportFile, err)
	}

	return nil
}

func writeLoanBlock(b *strings.Builder, library *circulation.Library, loan *circulation.Loan, asOf time.Time) {
	title := loan.ISBN
	if book, err := library.BookByISBN(loan.ISBN); err == nil {
		title = book.Title
	}

	patronName := loan.PatronID
	if patron, err := library.PatronByID(loan.PatronID); err == nil {
		patronName = patron.Name
	}

	status := "Open"
	feeAsOf := circulation.ToLoanDate(asOf)

	if !loan.IsOpen() {
		status = "Returned on " + loan.ReturnedAt.Format(circulation.DateLayout)
		feeAsOf = *loan.ReturnedAt
	}

	fmt.Fprintf(b, "- Book: '%s' (ISBN: %s)\n", title, loan.ISBN)
	fmt.Fprintf(b, "  Patron: '%s' (ID: %s)\n", patronName, loan.PatronID)
	fmt.Fprintf(b, "  Loan Date: %s\n", loan.LoanedAt.Format(circulation.DateLayout))
	fmt.Fprintf(b, "  Status: %s\n", status)
	fmt.Fprintf(b, "  Fee: %.2f\n", loan.ComputeFee(feeAsOf))
	b.WriteString("-----\n")
}

func writeStatistics(b *strings.Builder, stats circulation.Statistics) {
	fmt.Fprintf(b, "- Book Titles: %d\n", stats.BookTitleCount)
	fmt.Fprintf(b, "- Available Copies: %d\n", stats.TotalAvailableCopies)
	fmt.Fprintf(b, "- Registered Patrons: %d\n", stats.PatronCount)
	fmt.Fprintf(b, "- Open Loans: %d\n", stats.OpenLoanCount)
	fmt.Fprintf(b, "- Outstanding Fees: %.2f\n", stats.TotalOutstandingFees)
}
