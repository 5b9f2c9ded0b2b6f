package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

const defaultBlobContentType = "application/octet-stream"

type httpRelayAdapter struct {
	client   *utils.HTTPClient
	clientID string

	logger *logger.Logger
}

// NewHTTPRelayAdapter constructs an HTTP implementation of [RelayAdapter].
// clientID identifies this process to the relay and is sent with every
// request; the relay uses it to avoid pushing a client its own uploads.
func NewHTTPRelayAdapter(clientID, userAgent string, logger *logger.Logger) RelayAdapter {
	return &httpRelayAdapter{
		client:   utils.NewHTTPClient(userAgent),
		clientID: clientID,
		logger:   logger,
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BuildURL implements [RelayAdapter].
func (h *httpRelayAdapter) BuildURL(cfg config.SyncConfig, path string, extra url.Values) (string, error) {
	if strings.TrimSpace(cfg.ServerAddress) == "" || strings.TrimSpace(cfg.RoomID) == "" {
		return "", fmt.Errorf("%w: server address and room id are required", ErrConfiguration)
	}

	base, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return "", fmt.Errorf("%w: invalid server address: %w", ErrConfiguration, err)
	}

	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	q.Set("clientId", h.clientID)
	q.Set("roomId", cfg.RoomID)

	return base + path + "?" + q.Encode(), nil
}

// Upload implements [RelayAdapter]. It POSTs the type, value and search
// form fields and one "blobs" file part per attachment, in order, to
// POST /api/sync.
func (h *httpRelayAdapter) Upload(ctx context.Context, cfg config.SyncConfig, req models.UploadRequest) (models.UploadResponse, error) {
	u, err := h.BuildURL(cfg, PathSync, nil)
	if err != nil {
		return models.UploadResponse{}, err
	}

	timeout := cfg.RequestTimeout
	if len(req.Blobs) > 0 {
		timeout = cfg.AttachmentTimeout
	}
	ctx, cancel := withTimeout(ctx, timeout)
	defer cancel()

	fields := map[string]string{
		"type":  string(req.Type.Normalize()),
		"value": req.Value,
	}
	if req.Search != nil {
		fields["search"] = *req.Search
	}

	r := h.request(ctx).SetMultipartFormData(fields)
	for _, b := range req.Blobs {
		contentType := b.ContentType
		if contentType == "" {
			contentType = defaultBlobContentType
		}
		r.SetMultipartField("blobs", b.Name, contentType, bytes.NewReader(b.Data))
	}

	resp, err := r.Post(u)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("%w: upload request: %w", ErrNetwork, err)
	}

	h.log(ctx).Debug().
		Int("status", resp.StatusCode()).
		Int("blobs", len(req.Blobs)).
		Int64("blobs_size", req.BlobsSize()).
		Msg("upload finished")

	out := models.UploadResponse{StatusCode: resp.StatusCode()}
	if resp.StatusCode() >= 400 && resp.StatusCode() < 500 {
		out.Message = errorMessage(resp.Body())
	}

	return out, nil
}

// FetchLatest implements [RelayAdapter]. It GETs /api/sync and decodes the
// JSON payload. An empty body maps to [ErrEmptyRoom].
func (h *httpRelayAdapter) FetchLatest(ctx context.Context, cfg config.SyncConfig) (models.Payload, error) {
	u, err := h.BuildURL(cfg, PathSync, nil)
	if err != nil {
		return models.Payload{}, err
	}

	ctx, cancel := withTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	resp, err := h.request(ctx).
		SetHeader("Accept", "application/json").
		Get(u)
	if err != nil {
		return models.Payload{}, fmt.Errorf("%w: fetch latest request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Payload{}, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return models.Payload{}, ErrEmptyRoom
	}

	var p models.Payload
	if err = json.Unmarshal(body, &p); err != nil {
		return models.Payload{}, fmt.Errorf("%w: decode latest payload: %w", ErrNetwork, err)
	}

	return p, nil
}

// FetchAttachment implements [RelayAdapter]. It GETs /api/sync/file?i=index
// and returns the body with its Content-Type.
func (h *httpRelayAdapter) FetchAttachment(ctx context.Context, cfg config.SyncConfig, index int) (models.Blob, error) {
	u, err := h.BuildURL(cfg, PathSyncFile, url.Values{"i": {strconv.Itoa(index)}})
	if err != nil {
		return models.Blob{}, err
	}

	resp, err := h.request(ctx).Get(u)
	if err != nil {
		return models.Blob{}, fmt.Errorf("%w: fetch attachment %d: %w", ErrNetwork, index, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Blob{}, fmt.Errorf("fetch attachment %d: %w", index, err)
	}

	h.log(ctx).Debug().
		Int("index", index).
		Int("size", len(resp.Body())).
		Msg("attachment fetched")

	return models.Blob{
		ContentType: resp.Header().Get("Content-Type"),
		Data:        resp.Body(),
	}, nil
}

// Subscribe implements [RelayAdapter]. It GETs /api/sync/sse and hands the
// unread body to the caller.
func (h *httpRelayAdapter) Subscribe(ctx context.Context, cfg config.SyncConfig) (io.ReadCloser, error) {
	u, err := h.BuildURL(cfg, PathSyncSSE, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.request(ctx).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		SetDoNotParseResponse(true).
		Get(u)
	if err != nil {
		return nil, fmt.Errorf("%w: subscribe: %w", ErrNetwork, err)
	}

	body := resp.RawBody()
	if !resp.IsSuccess() {
		data, _ := io.ReadAll(io.LimitReader(body, 4096))
		_ = body.Close()
		return nil, fmt.Errorf("subscribe: %w", mapStatus(resp.StatusCode(), data))
	}

	return body, nil
}

func (h *httpRelayAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpRelayAdapter) log(ctx context.Context) *logger.Logger {
	if id, ok := utils.GetOperationIDFromContext(ctx); ok {
		return &logger.Logger{Logger: h.logger.With().Str("operation_id", id).Logger()}
	}
	return h.logger
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
