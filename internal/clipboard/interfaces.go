// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard connects the sync engine to the local system clipboard
// and to the keystroke used to paste downloaded content.
package clipboard

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-clip-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// ErrPasteUnavailable is returned by a [Paster] that has no paste command.
var ErrPasteUnavailable = errors.New("paste command is not configured")

// Clipboard reads and writes the local clipboard as [models.Payload] values.
type Clipboard interface {
	// Read returns the current clipboard content. An empty clipboard yields
	// a text payload with an empty value.
	Read(ctx context.Context) (models.Payload, error)

	// Write replaces the clipboard content with p.
	Write(ctx context.Context, p models.Payload) error
}

// Paster sends the paste keystroke to the focused application.
type Paster interface {
	Paste(ctx context.Context) error
}
