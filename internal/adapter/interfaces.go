// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the clipboard
// relay server.
//
// The primary abstraction is [RelayAdapter], which decouples the service
// layer from the relay's HTTP surface. The package ships an HTTP
// implementation ([NewHTTPRelayAdapter]) built on resty.
//
// Every request carries the process client id and the room id as query
// parameters. Error values defined in errors.go are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling.
package adapter

import (
	"context"
	"io"
	"net/url"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// Relay endpoint paths.
const (
	PathSync     = "/api/sync"
	PathSyncFile = "/api/sync/file"
	PathSyncSSE  = "/api/sync/sse"
)

// RelayAdapter defines raw communication with the relay server. It moves
// bytes only: encryption, size policy and notifications belong to the
// service layer. Every method takes the configuration snapshot of the
// calling operation so a reload never changes a request half way.
type RelayAdapter interface {
	// BuildURL returns the absolute URL of path on the relay with clientId,
	// roomId and the extra query parameters set. It returns
	// [ErrConfiguration] when the server address or the room id is missing.
	BuildURL(cfg config.SyncConfig, path string, extra url.Values) (string, error)

	// Upload posts req as a multipart form to POST /api/sync. Non-2xx
	// answers are reported in the returned [models.UploadResponse], not as
	// errors. Transport failures return [ErrNetwork].
	Upload(ctx context.Context, cfg config.SyncConfig, req models.UploadRequest) (models.UploadResponse, error)

	// FetchLatest returns the current payload of the room as stored on the
	// relay (value still encrypted).
	FetchLatest(ctx context.Context, cfg config.SyncConfig) (models.Payload, error)

	// FetchAttachment returns the raw (still encrypted) attachment stored
	// under index for the current payload of the room.
	FetchAttachment(ctx context.Context, cfg config.SyncConfig, index int) (models.Blob, error)

	// Subscribe opens the push stream of the room. The caller owns the
	// returned body and must close it; cancelling ctx also ends the stream.
	Subscribe(ctx context.Context, cfg config.SyncConfig) (io.ReadCloser, error)
}
