package circulation

import "errors"

// Book is a catalog entry with an available copy count. The Library owns all
// Book instances and indexes them by ISBN; nothing outside the Library holds
// a mutable reference across operations.
type Book struct {
	Title  string
	Author string
	ISBN   string
	Copies int
}

// BuildBook validates and creates a catalog entry.
func BuildBook(title string, author string, isbn string, copies int) (Book, error) {
	if title == "" {
		return Book{}, errors.Join(ErrValidation, ErrEmptyBookTitleSupplied)
	}

	if author == "" {
		return Book{}, errors.Join(ErrValidation, ErrEmptyBookAuthorSupplied)
	}

	if isbn == "" {
		return Book{}, errors.Join(ErrValidation, ErrEmptyBookISBNSupplied)
	}

	if copies < 0 {
		return Book{}, errors.Join(ErrValidation, ErrNegativeCopyCount)
	}

	return Book{
		Title:  title,
		Author: author,
		ISBN:   isbn,
		Copies: copies,
	}, nil
}

// IsAvailable reports whether at least one copy is on the shelf.
func (b *Book) IsAvailable() bool {
	return b.Copies > 0
}

// CheckOut takes one copy off the shelf. It reports false and mutates
// nothing when no copy is available, so the count never goes negative.
func (b *Book) CheckOut() bool {
	if !b.IsAvailable() {
		return false
	}

	b.Copies--

	return true
}

// CheckIn puts one copy back on the shelf. No upper bound is enforced, so a
// return recorded for a copy issued before this session can push the count
// above the imported total.
func (b *Book) CheckIn() {
	b.Copies++
}
