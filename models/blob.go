package models

// Blob is an opaque binary buffer together with its declared content type.
type Blob struct {
	ContentType string
	Data        []byte
}

// Size returns the length of the blob data in bytes.
func (b Blob) Size() int64 {
	return int64(len(b.Data))
}
