package circulation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// FeePolicy controls late-fee accrual: no fee within the grace period, then
// a flat rate per day of delay.
type FeePolicy struct {
	GracePeriodDays int
	DailyRate       float64
}

// DefaultFeePolicy is stamped onto every loan unless the Library was
// configured with WithFeePolicy.
var DefaultFeePolicy = FeePolicy{GracePeriodDays: 14, DailyRate: 0.5}

// Loan is a single borrowing transaction. It refers to its Book and Patron
// by key so that the Library stays the only owner of entity state.
//
// A loan is either open (ReturnedAt is nil) or closed. The transition is
// one-way; there is no reopening.
type Loan struct {
	ID         uuid.UUID
	ISBN       string
	PatronID   string
	LoanedAt   time.Time
	ReturnedAt *time.Time
	Policy     FeePolicy
}

// BuildLoan validates and creates an open loan.
func BuildLoan(isbn string, patronID string, loanedAt time.Time, policy FeePolicy) (Loan, error) {
	if isbn == "" {
		return Loan{}, errors.Join(ErrValidation, ErrEmptyBookISBNSupplied)
	}

	if patronID == "" {
		return Loan{}, errors.Join(ErrValidation, ErrEmptyPatronIDSupplied)
	}

	if loanedAt.IsZero() {
		return Loan{}, errors.Join(ErrValidation, ErrZeroLoanDateSupplied)
	}

	return Loan{
		ID:       uuid.New(),
		ISBN:     isbn,
		PatronID: patronID,
		LoanedAt: ToLoanDate(loanedAt),
		Policy:   policy,
	}, nil
}

// IsOpen reports whether the loan has not been returned yet.
func (l *Loan) IsOpen() bool {
	return l.ReturnedAt == nil
}

// ComputeFee returns the late fee accrued as of the given date: zero within
// the grace period, then DailyRate per whole day of delay.
//
// Caller contract: the open check only tests return-date presence. Once a
// return has been recorded the method returns 0 no matter which asOf is
// passed, so the final fee must be computed with the return date while the
// loan is still open. ReturnLoan on the Library does exactly that before
// closing the loan.
func (l *Loan) ComputeFee(asOf time.Time) float64 {
	if !l.IsOpen() {
		return 0
	}

	daysElapsed := DaysBetween(l.LoanedAt, asOf)
	if daysElapsed <= l.Policy.GracePeriodDays {
		return 0
	}

	return float64(daysElapsed-l.Policy.GracePeriodDays) * l.Policy.DailyRate
}

// RecordReturn closes the loan. It fails when the return date precedes the
// loan date, leaving the loan open.
//
// Closing is not idempotent - a second call would overwrite the return date.
// The Library only ever selects open loans for return, which is what
// prevents a double return; nothing else may call this on a closed loan.
func (l *Loan) RecordReturn(returnedAt time.Time) error {
	day := ToLoanDate(returnedAt)

	if day.Before(l.LoanedAt) {
		return errors.Join(ErrValidation, ErrReturnDateBeforeLoanDate)
	}

	l.ReturnedAt = &day

	return nil
}
