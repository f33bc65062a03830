package accordion

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports an item index outside the group.
	ErrIndexOutOfRange = errors.New("accordion: index out of range")
	// ErrInvalidMode reports a Mode value other than ModeSingle or ModeMultiple.
	ErrInvalidMode = errors.New("accordion: invalid mode")
)

// IndexError carries the offending index and the size of the item sequence.
// It matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("accordion: index %d out of range [0,%d)", e.Index, e.Size)
}

// Unwrap exposes ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{Index: index, Size: size}
	}
	return nil
}
