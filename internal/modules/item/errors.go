package item

import "errors"

var (
	// ErrItemNotFound is also returned when a non-owner tries to change an item, so
	// the caller cannot probe which items exist.
	ErrItemNotFound = errors.New("item not found")

	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidPaging = errors.New("invalid paging parameters")
)
