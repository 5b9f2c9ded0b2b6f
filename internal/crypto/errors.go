package crypto

import "errors"

// ErrDecryption is returned when an envelope cannot be opened. Wrong
// secrets, corrupted data and malformed envelopes are not distinguished.
var ErrDecryption = errors.New("decryption failed")
