package window

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativePosition indicates a center offset below zero.
	ErrNegativePosition = errors.New("window: negative position")
	// ErrNegativeContext indicates a context radius below zero.
	ErrNegativeContext = errors.New("window: negative context")
	// ErrShortFile indicates the second buffer ends before the window does.
	ErrShortFile = errors.New("window: file shorter than window")
	// ErrIdentical indicates no differing byte exists to center a window on.
	ErrIdentical = errors.New("window: files are identical")
)

// BoundsError reports a buffer that cannot supply every byte of the window.
type BoundsError struct {
	File  string // label or path of the short buffer
	Len   int    // its length
	Start int    // window start
	End   int    // window end the buffer would have to reach
	Err   error  // range check that failed, if any
}

func (e *BoundsError) Error() string {
	msg := fmt.Sprintf("window: %s has %d bytes, window [%d, %d) runs past its end",
		e.File, e.Len, e.Start, e.End)
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

// Unwrap lets errors.Is match ErrShortFile.
func (e *BoundsError) Unwrap() error { return ErrShortFile }
