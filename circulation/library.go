package circulation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// SearchField selects which catalog attribute SearchBooks matches against.
type SearchField string

// Supported search fields. Title and author match by substring, ISBN by
// exact comparison; all three are case-insensitive.
const (
	SearchByTitle  SearchField = "title"
	SearchByAuthor SearchField = "author"
	SearchByISBN   SearchField = "isbn"
)

// Library owns the catalog (ISBN to Book), the patron registry (patron ID to
// Patron), and the append-only loan log, and enforces every invariant across
// them. It holds the only authoritative copies of all entities for the
// duration of a session.
//
// A Library is not safe for concurrent use. Issuing and returning loans are
// multi-step read-modify-write sequences, so callers porting this into a
// concurrent environment must serialize access with a single coarse lock.
type Library struct {
	books     map[string]*Book
	patrons   map[string]*Patron
	loans     []*Loan
	feePolicy FeePolicy
	clock     func() time.Time
	logger    Logger
}

// NewLibrary creates an empty Library with optional configuration. There is
// no package-level instance; callers own the Library they construct.
func NewLibrary(opts ...Option) (*Library, error) {
	library := &Library{
		books:     make(map[string]*Book),
		patrons:   make(map[string]*Patron),
		feePolicy: DefaultFeePolicy,
		clock:     time.Now,
		logger:    noopLogger{},
	}

	for _, opt := range opts {
		if err := opt(library); err != nil {
			return nil, err
		}
	}

	return library, nil
}

// AddBook validates and registers a catalog entry. A duplicate ISBN is
// rejected instead of silently replacing the existing entry.
func (l *Library) AddBook(title string, author string, isbn string, copies int) (*Book, error) {
	book, err := BuildBook(title, author, isbn, copies)
	if err != nil {
		return nil, err
	}

	if _, exists := l.books[book.ISBN]; exists {
		return nil, errors.Join(ErrConflict, fmt.Errorf("book with ISBN %q is already in the catalog", book.ISBN))
	}

	l.books[book.ISBN] = &book
	l.logger.Debug("book added to catalog", "isbn", book.ISBN, "title", book.Title, "copies", book.Copies)

	return &book, nil
}

// RegisterPatron validates and registers a borrower. A duplicate patron ID
// is rejected.
func (l *Library) RegisterPatron(name string, id string) (*Patron, error) {
	patron, err := BuildPatron(name, id)
	if err != nil {
		return nil, err
	}

	if _, exists := l.patrons[patron.ID]; exists {
		return nil, errors.Join(ErrConflict, fmt.Errorf("patron with ID %q is already registered", patron.ID))
	}

	l.patrons[patron.ID] = &patron
	l.logger.Debug("patron registered", "id", patron.ID, "name", patron.Name)

	return &patron, nil
}

// SearchBooks returns the catalog entries matching the query on the given
// field, sorted by ISBN for deterministic output. An unknown field yields an
// empty result, not an error.
func (l *Library) SearchBooks(field SearchField, query string) []*Book {
	var results []*Book

	needle := strings.ToLower(query)

	for _, book := range l.books {
		switch field {
		case SearchByTitle:
			if strings.Contains(strings.ToLower(book.Title), needle) {
				results = append(results, book)
			}

		case SearchByAuthor:
			if strings.Contains(strings.ToLower(book.Author), needle) {
				results = append(results, book)
			}

		case SearchByISBN:
			if strings.EqualFold(book.ISBN, query) {
				results = append(results, book)
			}
		}
	}

	slices.SortFunc(results, func(a, b *Book) int {
		return strings.Compare(a.ISBN, b.ISBN)
	})

	return results
}

// BookByISBN returns the catalog entry for the given ISBN.
func (l *Library) BookByISBN(isbn string) (*Book, error) {
	book, exists := l.books[isbn]
	if !exists {
		return nil, errors.Join(ErrNotFound, fmt.Errorf("no book with ISBN %q in the catalog", isbn))
	}

	return book, nil
}

// PatronByID returns the registered borrower with the given ID.
func (l *Library) PatronByID(id string) (*Patron, error) {
	patron, exists := l.patrons[id]
	if !exists {
		return nil, errors.Join(ErrNotFound, fmt.Errorf("no patron with ID %q registered", id))
	}

	return patron, nil
}

// IssueLoan creates a loan for the given book and patron on the given date.
// It fails when the ISBN or patron ID is unknown, no copy is available, or
// the date text is unparsable.
//
// All lookups and validation complete before the first mutation, so a
// failure never leaves a Loan without matching copy and borrowed-set state.
func (l *Library) IssueLoan(isbn string, patronID string, dateText string) (*Loan, error) {
	book, err := l.BookByISBN(isbn)
	if err != nil {
		return nil, err
	}

	patron, err := l.PatronByID(patronID)
	if err != nil {
		return nil, err
	}

	if !book.IsAvailable() {
		return nil, errors.Join(ErrConflict, fmt.Errorf("no available copy of %q (ISBN %s)", book.Title, book.ISBN))
	}

	loanedAt, err := ParseDate(dateText)
	if err != nil {
		return nil, err
	}

	loan, err := BuildLoan(book.ISBN, patron.ID, loanedAt, l.feePolicy)
	if err != nil {
		return nil, err
	}

	book.CheckOut() // cannot fail, availability was checked above
	patron.AddLoanedBook(book.ISBN)
	l.loans = append(l.loans, &loan)

	l.logger.Info("loan issued", "isbn", book.ISBN, "patron", patron.ID, "date", dateText)

	return &loan, nil
}

// ReturnLoan closes the first open loan matching both keys, in insertion
// order, and returns the late fee due. Only open loans are eligible for
// matching, which is the single guard against returning the same loan twice;
// a second return for the same keys fails with a not-found error.
func (l *Library) ReturnLoan(isbn string, patronID string, dateText string) (float64, error) {
	for _, loan := range l.loans {
		if loan.ISBN != isbn || loan.PatronID != patronID || !loan.IsOpen() {
			continue
		}

		returnedAt, err := ParseDate(dateText)
		if err != nil {
			return 0, err
		}

		// The fee must be captured while the loan is still open;
		// ComputeFee reports 0 once the return date is recorded.
		fee := loan.ComputeFee(returnedAt)

		if err := loan.RecordReturn(returnedAt); err != nil {
			return 0, err
		}

		l.books[isbn].CheckIn() // the catalog never deletes entries, so the book must exist
		l.patrons[patronID].RemoveLoanedBook(isbn)

		l.logger.Info("loan returned", "isbn", isbn, "patron", patronID, "date", dateText, "fee", fee)

		return fee, nil
	}

	return 0, errors.Join(ErrNotFound, fmt.Errorf("no open loan for ISBN %q and patron %q", isbn, patronID))
}

// LoansInMonth returns the loans issued in the given month, in registration
// order, regardless of whether they have been returned since.
func (l *Library) LoansInMonth(month time.Month, year int) []*Loan {
	var loans []*Loan

	for _, loan := range l.loans {
		if loan.LoanedAt.Month() == month && loan.LoanedAt.Year() == year {
			loans = append(loans, loan)
		}
	}

	return loans
}

// Books returns all catalog entries sorted by ISBN.
func (l *Library) Books() []*Book {
	books := make([]*Book, 0, len(l.books))
	for _, book := range l.books {
		books = append(books, book)
	}

	slices.SortFunc(books, func(a, b *Book) int {
		return strings.Compare(a.ISBN, b.ISBN)
	})

	return books
}

// Patrons returns all registered borrowers sorted by ID.
func (l *Library) Patrons() []*Patron {
	patrons := make([]*Patron, 0, len(l.patrons))
	for _, patron := range l.patrons {
		patrons = append(patrons, patron)
	}

	slices.SortFunc(patrons, func(a, b *Patron) int {
		return strings.Compare(a.ID, b.ID)
	})

	return patrons
}

// Loans returns the loan log in registration order.
func (l *Library) Loans() []*Loan {
	return slices.Clone(l.loans)
}

// Today returns the current calendar date from the configured clock.
func (l *Library) Today() time.Time {
	return ToLoanDate(l.clock())
}
