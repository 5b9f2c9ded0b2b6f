package store

import "errors"

// Sentinel errors returned by [FileStore] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrFileNotFound is returned when an attachment referenced by a
	// payload does not exist on disk.
	ErrFileNotFound = errors.New("file not found")

	// ErrNotAFile is returned when a payload path points at a directory
	// or another non-regular file.
	ErrNotAFile = errors.New("not a regular file")
)
