package circulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openshelf/circulation-ledger-go/circulation"
)

func Test_BuildBook_Success(t *testing.T) {
	// act
	book, err := circulation.BuildBook("1984", "George Orwell", "978-0-345-33968-3", 3)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "1984", book.Title)
	assert.Equal(t, "George Orwell", book.Author)
	assert.Equal(t, "978-0-345-33968-3", book.ISBN)
	assert.Equal(t, 3, book.Copies)
}

func Test_BuildBook_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name        string
		title       string
		author      string
		isbn        string
		copies      int
		expectedErr error
	}{
		{
			name:        "empty title",
			author:      "George Orwell",
			isbn:        "978-0-345-33968-3",
			copies:      3,
			expectedErr: circulation.ErrEmptyBookTitleSupplied,
		},
		{
			name:        "empty author",
			title:       "1984",
			isbn:        "978-0-345-33968-3",
			copies:      3,
			expectedErr: circulation.ErrEmptyBookAuthorSupplied,
		},
		{
			name:        "empty ISBN",
			title:       "1984",
			author:      "George Orwell",
			copies:      3,
			expectedErr: circulation.ErrEmptyBookISBNSupplied,
		},
		{
			name:        "negative copy count",
			title:       "1984",
			author:      "George Orwell",
			isbn:        "978-0-345-33968-3",
			copies:      -1,
			expectedErr: circulation.ErrNegativeCopyCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := circulation.BuildBook(tc.title, tc.author, tc.isbn, tc.copies)

			// assert
			assert.ErrorIs(t, err, circulation.ErrValidation)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func Test_BuildBook_Success_WithZeroCopies(t *testing.T) {
	// act
	book, err := circulation.BuildBook("1984", "George Orwell", "978-0-345-33968-3", 0)

	// assert
	assert.NoError(t, err)
	assert.False(t, book.IsAvailable())
}

func Test_Book_CheckOut_DecrementsUntilUnavailable(t *testing.T) {
	// arrange
	book, err := circulation.BuildBook("1984", "George Orwell", "978-0-345-33968-3", 2)
	assert.NoError(t, err)

	// act + assert
	assert.True(t, book.CheckOut())
	assert.Equal(t, 1, book.Copies)

	assert.True(t, book.CheckOut())
	assert.Equal(t, 0, book.Copies)

	// no copy left: no mutation, checkout refused
	assert.False(t, book.CheckOut())
	assert.Equal(t, 0, book.Copies)
}

func Test_Book_CheckIn_IncrementsWithoutUpperBound(t *testing.T) {
	// arrange
	book, err := circulation.BuildBook("1984", "George Orwell", "978-0-345-33968-3", 1)
	assert.NoError(t, err)

	// act
	book.CheckIn()
	book.CheckIn()

	// assert - the count may exceed the registered total
	assert.Equal(t, 3, book.Copies)
}
