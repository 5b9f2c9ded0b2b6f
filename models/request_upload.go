package models

// UploadRequest is the multipart body posted to the relay for one payload.
// Value is already encrypted when the room has a secret.
type UploadRequest struct {
	// Type is sent as the "type" form field.
	Type ClipboardType

	// Value is sent as the "value" form field.
	Value string

	// Search is sent as the "search" form field when set.
	Search *string

	// Blobs are sent as repeated "blobs" file parts. Their order is the
	// attachment index order.
	Blobs []NamedBlob
}

// NamedBlob is an attachment blob with the file name used for its
// multipart part.
type NamedBlob struct {
	Name string
	Blob
}

// BlobsSize returns the sum of all blob sizes in bytes.
func (r UploadRequest) BlobsSize() int64 {
	var total int64
	for _, b := range r.Blobs {
		total += b.Size()
	}
	return total
}
