package window

import (
	"errors"
	"fmt"

	"github.com/joshuapare/bytewin/internal/mmfile"
)

// mapFile is swapped in tests to observe releases.
var mapFile = mmfile.Map

// CompareFiles loads both files and compares the window around pos. Both
// files are released before returning, on success and on error.
func CompareFiles(pathA, pathB string, pos int, opts *Options) (*Result, error) {
	var res *Result
	err := withFiles(pathA, pathB, func(a, b []byte) error {
		var err error
		res, err = Compare(a, b, pos, opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CompareFilesAtFirstDiff centers the window on the first differing offset.
// Identical files return ErrIdentical.
//
// When pathB is a truncated copy of pathA the first difference is the end of
// pathB, which has no byte to show. The window is then clamped to pathB so it
// ends at the truncation point instead of failing with a *BoundsError.
func CompareFilesAtFirstDiff(pathA, pathB string, opts *Options) (*Result, error) {
	var res *Result
	err := withFiles(pathA, pathB, func(a, b []byte) error {
		pos, ok := FirstDiff(a, b)
		if !ok {
			return ErrIdentical
		}
		windowOpts := opts
		if pos == len(b) && len(b) < len(a) {
			clamped := *resolve(opts)
			clamped.Clamp = true
			windowOpts = &clamped
		}
		var err error
		res, err = Compare(a, b, pos, windowOpts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func withFiles(pathA, pathB string, fn func(a, b []byte) error) (err error) {
	a, releaseA, err := mapFile(pathA)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", pathA, err)
	}
	defer func() {
		if cerr := releaseA(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to release %s: %w", pathA, cerr)
		}
	}()

	b, releaseB, err := mapFile(pathB)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", pathB, err)
	}
	defer func() {
		if cerr := releaseB(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to release %s: %w", pathB, cerr)
		}
	}()

	if err := fn(a, b); err != nil {
		var be *BoundsError
		if errors.As(err, &be) {
			switch be.File {
			case labelA:
				be.File = pathA
			case labelB:
				be.File = pathB
			}
		}
		return err
	}
	return nil
}
