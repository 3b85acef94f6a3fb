package circulation

// Statistics is a snapshot derived from the registries and the loan log.
// It is recomputed on every call and never stored.
type Statistics struct {
	BookTitleCount       int
	TotalAvailableCopies int
	PatronCount          int
	OpenLoanCount        int
	TotalOutstandingFees float64
}

// Statistics projects the current registry state into a snapshot.
// Outstanding fees are evaluated as of today (from the configured clock) for
// every currently open loan; closed loans contribute nothing.
func (l *Library) Statistics() Statistics {
	stats := Statistics{
		BookTitleCount: len(l.books),
		PatronCount:    len(l.patrons),
	}

	for _, book := range l.books {
		stats.TotalAvailableCopies += book.Copies
	}

	today := l.Today()

	for _, loan := range l.loans {
		if !loan.IsOpen() {
			continue
		}

		stats.OpenLoanCount++
		stats.TotalOutstandingFees += loan.ComputeFee(today)
	}

	return stats
}
