package collection

import (
	"errors"
	"fmt"
)

// ErrOutOfRange matches any IndexError via errors.Is.
var ErrOutOfRange = errors.New("collection: index out of range")

// IndexError reports an index that does not name an entry.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("collection: no entry at index %d, journal is empty", e.Index)
	}
	return fmt.Sprintf("collection: no entry at index %d, valid range is 0-%d", e.Index, e.Len-1)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrOutOfRange
}
