package window

import (
	"fmt"

	"github.com/joshuapare/bytewin/internal/buf"
)

// Labels used in errors raised by Compare, which has no file names to report.
const (
	labelA = "file1"
	labelB = "file2"
)

func resolve(opts *Options) *Options {
	if opts == nil {
		return DefaultOptions()
	}
	return opts
}

// Span computes the window bounds for buffers of lenA and lenB bytes centered
// on pos.
//
// Start is max(0, pos-context) and End is min(lenA, pos+context); with
// opts.Clamp End is further limited by lenB. A center past the end of the
// data yields Start > End, which is an empty window. Without Clamp a lenB
// that cannot cover a non-empty window is reported as a *BoundsError.
func Span(lenA, lenB, pos int, opts *Options) (Bounds, error) {
	opts = resolve(opts)
	if pos < 0 {
		return Bounds{}, fmt.Errorf("%w: %d", ErrNegativePosition, pos)
	}
	if opts.Context < 0 {
		return Bounds{}, fmt.Errorf("%w: %d", ErrNegativeContext, opts.Context)
	}

	start := max(0, buf.SubSaturating(pos, opts.Context))
	end := min(lenA, buf.AddSaturating(pos, opts.Context))
	if opts.Clamp {
		end = min(end, lenB)
	}
	b := Bounds{Start: start, End: end}

	if b.Len() == 0 {
		return b, nil
	}
	if err := buf.CheckSpan(lenB, start, end); err != nil {
		return Bounds{}, &BoundsError{File: labelB, Len: lenB, Start: start, End: end, Err: err}
	}
	return b, nil
}

// Compare builds the rows for the window around pos. The returned rows own
// their byte values, so a and b may be released afterwards.
func Compare(a, b []byte, pos int, opts *Options) (*Result, error) {
	bounds, err := Span(len(a), len(b), pos, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Bounds: bounds,
		Center: pos,
		LenA:   len(a),
		LenB:   len(b),
	}
	n := bounds.Len()
	if n == 0 {
		res.Rows = []Row{}
		return res, nil
	}

	sa, ok := buf.Slice(a, bounds.Start, n)
	if !ok {
		return nil, &BoundsError{File: labelA, Len: len(a), Start: bounds.Start, End: bounds.End}
	}
	sb, ok := buf.Slice(b, bounds.Start, n)
	if !ok {
		return nil, &BoundsError{File: labelB, Len: len(b), Start: bounds.Start, End: bounds.End}
	}

	res.Rows = make([]Row, n)
	for i := range n {
		res.Rows[i] = Row{
			Index:   bounds.Start + i,
			A:       sa[i],
			B:       sb[i],
			Differs: sa[i] != sb[i],
		}
	}
	return res, nil
}

// FirstDiff returns the first offset at which a and b disagree. When one
// buffer is a prefix of the other the offset is the shorter length. ok is
// false only for identical buffers.
func FirstDiff(a, b []byte) (offset int, ok bool) {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i, true
		}
	}
	if len(a) != len(b) {
		return n, true
	}
	return 0, false
}
