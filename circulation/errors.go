package circulation

import "errors"

// Error kinds. Every failure returned by this package wraps exactly one of
// these sentinels, so callers can classify failures with errors.Is without
// inspecting message text.
var (
	// ErrValidation marks a malformed or missing required field on entity construction.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a lookup for an unknown ISBN, patron ID, or open loan.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a duplicate registration or an unavailable book.
	ErrConflict = errors.New("conflict")
	// ErrFormat marks unparsable date text.
	ErrFormat = errors.New("format error")
)

// Construction and option failures, joined with the kind sentinel above at the call site.
var (
	ErrEmptyBookTitleSupplied   = errors.New("book title must not be empty")
	ErrEmptyBookAuthorSupplied  = errors.New("book author must not be empty")
	ErrEmptyBookISBNSupplied    = errors.New("book ISBN must not be empty")
	ErrNegativeCopyCount        = errors.New("book copy count must not be negative")
	ErrEmptyPatronNameSupplied  = errors.New("patron name must not be empty")
	ErrEmptyPatronIDSupplied    = errors.New("patron ID must not be empty")
	ErrZeroLoanDateSupplied     = errors.New("loan date must be a valid calendar date")
	ErrReturnDateBeforeLoanDate = errors.New("return date must not be earlier than the loan date")
	ErrNilLoggerSupplied        = errors.New("nil logger supplied")
	ErrNilClockSupplied         = errors.New("nil clock supplied")
	ErrInvalidFeePolicySupplied = errors.New("fee policy must have a non-negative grace period and daily rate")
)
