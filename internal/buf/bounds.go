// Package buf contains overflow-safe offset arithmetic and range checks for
// byte buffers.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// AddSaturating adds a and b, pinning the result to math.MaxInt or math.MinInt
// instead of wrapping.
func AddSaturating(a, b int) int {
	sum, ok := AddOverflowSafe(a, b)
	if ok {
		return sum
	}
	if b > 0 {
		return math.MaxInt
	}
	return math.MinInt
}

// SubSaturating subtracts b from a with the same pinning as AddSaturating.
func SubSaturating(a, b int) int {
	if b == math.MinInt {
		if a >= 0 {
			return math.MaxInt
		}
		return a - b
	}
	return AddSaturating(a, -b)
}

// CheckSpan validates that [start, end) is a well-formed range inside a buffer
// of bufLen bytes. The error names the specific failure.
//
//	if err := buf.CheckSpan(len(data), start, end); err != nil {
//	    return fmt.Errorf("window: %w", err)
//	}
//	// data[start:end] is safe
func CheckSpan(bufLen, start, end int) error {
	if start < 0 {
		return fmt.Errorf("negative start: %d", start)
	}
	if end < start {
		return fmt.Errorf("inverted span: start=%d > end=%d", start, end)
	}
	if end > bufLen {
		return fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
