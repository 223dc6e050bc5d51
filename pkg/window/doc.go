/*
Package window compares two byte buffers inside a bounded window around a
center offset.

# Quick Start

Compare 10 bytes either side of offset 200:

	res, err := window.CompareFiles("out.bin", "golden.bin", 200, nil)
	if err != nil {
	    log.Fatal(err)
	}
	for _, row := range res.Rows {
	    fmt.Printf("%d\t%s\t%s\t%s\n", row.Index, window.HexByte(row.A), window.HexByte(row.B), row.Marker())
	}

# Bounds

The window is [max(0, pos-context), min(len(a), pos+context)). Only the first
buffer's length limits the end of the window. When the second buffer is shorter
than that end, Compare returns a *BoundsError instead of a partial result:

	_, err := window.Compare(a, b, 200, nil)
	var be *window.BoundsError
	if errors.As(err, &be) {
	    fmt.Printf("%s has %d bytes, window needs %d\n", be.File, be.Len, be.End)
	}

Set Options.Clamp to shrink the window to the shorter buffer instead:

	res, err := window.Compare(a, b, 200, &window.Options{Context: 10, Clamp: true})

# Locating a difference

FirstDiff finds the first offset where two buffers disagree, and
CompareFilesAtFirstDiff centers the window on it.
*/
package window
