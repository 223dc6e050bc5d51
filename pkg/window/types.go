package window

import "encoding/hex"

// DefaultContext is the number of bytes taken on each side of the center offset.
const DefaultContext = 10

// Marker flags a row whose bytes differ.
const Marker = "***"

// Options controls window construction.
type Options struct {
	// Context is the radius around the center offset. Must be >= 0.
	Context int

	// Clamp limits the window end by both buffer lengths instead of failing
	// when the second buffer is shorter than the first.
	Clamp bool
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{Context: DefaultContext}
}

// Bounds is the half-open index range [Start, End).
type Bounds struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of indices in the window. A window whose start lies
// past its end is empty.
func (b Bounds) Len() int {
	if b.End < b.Start {
		return 0
	}
	return b.End - b.Start
}

// Row is one compared index.
type Row struct {
	Index   int
	A       byte
	B       byte
	Differs bool
}

// Marker returns the diff marker for r, or "" when both bytes match.
func (r Row) Marker() string {
	if r.Differs {
		return Marker
	}
	return ""
}

// Result is a computed window.
type Result struct {
	Bounds
	Rows []Row

	// Center is the offset the window was built around.
	Center int

	// LenA and LenB are the full lengths of the compared buffers.
	LenA int
	LenB int
}

// Differences counts rows whose bytes differ.
func (r *Result) Differences() int {
	n := 0
	for _, row := range r.Rows {
		if row.Differs {
			n++
		}
	}
	return n
}

// HexByte renders b as exactly two lowercase hex digits.
func HexByte(b byte) string {
	return hex.EncodeToString([]byte{b})
}
