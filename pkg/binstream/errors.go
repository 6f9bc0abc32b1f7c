package binstream

import (
	"errors"
	"fmt"
)

// ErrShortRead is returned when a read or skip would cross the active
// boundary.
var ErrShortRead = errors.New("binstream: short read")

// BoundsError reports a boundary violation: an operation needing Need
// bytes was issued at Pos with the effective limit at Bound. It unwraps
// to ErrShortRead so callers can match with errors.Is.
type BoundsError struct {
	Pos   int // absolute position at the time of the request
	Bound int // exclusive upper limit in effect (buffer or window end)
	Need  int // number of bytes requested
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("binstream: short read: need %d bytes at offset %d, have %d",
		e.Need, e.Pos, e.Bound-e.Pos)
}

func (e *BoundsError) Unwrap() error { return ErrShortRead }
