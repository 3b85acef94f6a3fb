package circulation

import "fmt"

// BookRecord is one catalog row handed in by an import adapter.
type BookRecord struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Copies int    `json:"copies"`
}

// PatronRecord is one borrower row handed in by an import adapter.
type PatronRecord struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ImportIssue describes one record that was skipped during a batch import.
type ImportIssue struct {
	Record string
	Err    error
}

// ImportResult sums up a batch import: how many records were registered and
// which ones were skipped, with the failure that caused each skip.
type ImportResult struct {
	BooksImported   int
	PatronsImported int
	Issues          []ImportIssue
}

// ImportRecords registers the given catalog and patron records. A record
// that fails validation, or that duplicates an existing ISBN or patron ID,
// is skipped and reported through the result; the batch itself never aborts.
func (l *Library) ImportRecords(books []BookRecord, patrons []PatronRecord) ImportResult {
	var result ImportResult

	for _, record := range books {
		if _, err := l.AddBook(record.Title, record.Author, record.ISBN, record.Copies); err != nil {
			l.logger.Warn("skipping book record", "isbn", record.ISBN, "title", record.Title, "error", err)
			result.Issues = append(result.Issues, ImportIssue{
				Record: fmt.Sprintf("book %q (ISBN %q)", record.Title, record.ISBN),
				Err:    err,
			})

			continue
		}

		result.BooksImported++
	}

	for _, record := range patrons {
		if _, err := l.RegisterPatron(record.Name, record.ID); err != nil {
			l.logger.Warn("skipping patron record", "id", record.ID, "name", record.Name, "error", err)
			result.Issues = append(result.Issues, ImportIssue{
				Record: fmt.Sprintf("patron %q (ID %q)", record.Name, record.ID),
				Err:    err,
			})

			continue
		}

		result.PatronsImported++
	}

	return result
}
