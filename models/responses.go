package models

// ErrorResponse is the JSON body the relay returns with 4xx statuses.
type ErrorResponse struct {
	// Message is a human-readable reason, suitable for a notification.
	Message string `json:"message"`
}

// UploadResponse summarises the relay's answer to an upload.
type UploadResponse struct {
	// StatusCode is the HTTP status returned by the relay.
	StatusCode int

	// Message is the server-supplied message for 4xx answers, or the raw
	// body when it was not a JSON [ErrorResponse].
	Message string
}
