// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides access to the local files the sync engine reads
// before an upload and writes after a download.
package store

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/file_store_mock.go -package=mock

// FileStore reads attachment files referenced by clipboard payloads and
// writes downloaded attachments into the sync directory.
type FileStore interface {
	// EnsureDir creates dir and any missing parents.
	EnsureDir(ctx context.Context, dir string) error

	// ReadFile returns the contents of path with a detected content type.
	// A missing file yields an error matching [ErrFileNotFound].
	ReadFile(ctx context.Context, path string) (models.Blob, error)

	// WriteFile stores data at path, replacing any existing file. Readers
	// never observe a partially written file.
	WriteFile(ctx context.Context, path string, data []byte) error
}
