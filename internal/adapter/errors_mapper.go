package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-clip-sync/models"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

func mapStatus(status int, rawBody []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(rawBody)
	if body == "" {
		body = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrNotFound, body)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: http %d: %s", ErrNetwork, ErrServer, status, body)
	case status >= http.StatusBadRequest:
		return fmt.Errorf("%w: %w: http %d: %s", ErrNetwork, ErrBadRequest, status, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrNetwork, status, body)
	}
}

// errorMessage extracts the message of a JSON error body, falling back to
// the trimmed raw body.
func errorMessage(rawBody []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(rawBody, &er); err == nil && er.Message != "" {
		return er.Message
	}
	return strings.TrimSpace(string(rawBody))
}
