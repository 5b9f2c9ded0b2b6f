package adapter

import "errors"

var (
	// ErrConfiguration means the relay address or room id is not set.
	ErrConfiguration = errors.New("relay is not configured")
	// ErrNetwork wraps every failure to get a usable answer from the relay.
	ErrNetwork = errors.New("relay request failed")

	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
	ErrServer     = errors.New("relay server error")
	// ErrEmptyRoom is returned by FetchLatest when nothing was uploaded yet.
	ErrEmptyRoom = errors.New("room has no content")
)
