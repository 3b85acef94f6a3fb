package circulation

import (
	"errors"
	"slices"
)

// Patron is a registered borrower. Borrowed books are tracked by ISBN key in
// insertion order; the same ISBN may appear more than once, one entry per
// open loan, so removal releases exactly one held copy.
type Patron struct {
	Name        string
	ID          string
	LoanedISBNs []string
}

// BuildPatron validates and creates a borrower.
func BuildPatron(name string, id string) (Patron, error) {
	if name == "" {
		return Patron{}, errors.Join(ErrValidation, ErrEmptyPatronNameSupplied)
	}

	if id == "" {
		return Patron{}, errors.Join(ErrValidation, ErrEmptyPatronIDSupplied)
	}

	return Patron{
		Name: name,
		ID:   id,
	}, nil
}

// AddLoanedBook appends the ISBN to the borrowed set.
func (p *Patron) AddLoanedBook(isbn string) {
	p.LoanedISBNs = append(p.LoanedISBNs, isbn)
}

// RemoveLoanedBook removes the first matching ISBN from the borrowed set and
// reports whether a match was found. It is a no-op returning false when the
// patron does not hold the given ISBN.
func (p *Patron) RemoveLoanedBook(isbn string) bool {
	for i, held := range p.LoanedISBNs {
		if held == isbn {
			p.LoanedISBNs = slices.Delete(p.LoanedISBNs, i, i+1)
			return true
		}
	}

	return false
}
