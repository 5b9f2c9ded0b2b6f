package service

import "errors"

var (
	// ErrPartialAttachment means at least one attachment of a download
	// failed; nothing was written to the clipboard.
	ErrPartialAttachment = errors.New("attachment download failed")

	// ErrInvalidPayload means a payload value does not match its type
	// (for example a file list that is not a JSON array).
	ErrInvalidPayload = errors.New("invalid payload")
)
