// Package mmfile provides platform-specific helpers for making whole input
// files addressable as byte slices.
package mmfile

import "errors"

// ErrNotRegular is returned for directories, devices and other non-regular paths.
var ErrNotRegular = errors.New("mmfile: not a regular file")

func noop() error { return nil }
