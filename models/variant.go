// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// Attachment describes one blob that belongs to a payload. Index is the
// position the relay stores the blob under; it must be used unchanged when
// the blob is fetched back.
type Attachment struct {
	Index int
	Path  string
	Name  string
}

// Variant is the per-type behaviour of a [Payload]. The set of variants is
// closed: one for the text kinds, one for images and one for file lists.
type Variant interface {
	// Attachments lists the local files that must be uploaded alongside a
	// payload with the given value, in upload order.
	Attachments(value string) ([]Attachment, error)

	// RemoteAttachments lists the attachments a downloaded payload refers
	// to. Paths are the ones recorded by the uploader; only their base names
	// are meaningful on this machine.
	RemoteAttachments(value string) ([]Attachment, error)

	// Assemble builds the payload that is written to the local clipboard
	// once every attachment of p has been downloaded to localPaths.
	Assemble(p Payload, localPaths []string) (Payload, error)
}

// VariantOf returns the variant for t.
func VariantOf(t ClipboardType) Variant {
	switch t.Normalize() {
	case TypeImage:
		return imageVariant{}
	case TypeFiles:
		return fileListVariant{}
	default:
		return textVariant{}
	}
}

type textVariant struct{}

func (textVariant) Attachments(string) ([]Attachment, error)       { return nil, nil }
func (textVariant) RemoteAttachments(string) ([]Attachment, error) { return nil, nil }
func (textVariant) Assemble(p Payload, _ []string) (Payload, error) {
	return p, nil
}

type imageVariant struct{}

func (imageVariant) Attachments(value string) ([]Attachment, error) {
	if value == "" {
		return nil, fmt.Errorf("image payload without path")
	}
	return []Attachment{{Index: 0, Path: value, Name: BaseName(value)}}, nil
}

func (v imageVariant) RemoteAttachments(value string) ([]Attachment, error) {
	return v.Attachments(value)
}

// Assemble turns a downloaded image into a one-element file list. Writing
// the image as a file keeps a single copy on disk and makes it compare equal
// to a locally captured file set.
func (imageVariant) Assemble(p Payload, localPaths []string) (Payload, error) {
	if len(localPaths) != 1 {
		return Payload{}, fmt.Errorf("image payload expects 1 attachment, got %d", len(localPaths))
	}
	return fileListPayload(p, localPaths)
}

type fileListVariant struct{}

func (fileListVariant) Attachments(value string) ([]Attachment, error) {
	paths, err := DecodePathList(value)
	if err != nil {
		return nil, err
	}
	out := make([]Attachment, len(paths))
	for i, path := range paths {
		out[i] = Attachment{Index: i, Path: path, Name: BaseName(path)}
	}
	return out, nil
}

func (v fileListVariant) RemoteAttachments(value string) ([]Attachment, error) {
	return v.Attachments(value)
}

func (fileListVariant) Assemble(p Payload, localPaths []string) (Payload, error) {
	return fileListPayload(p, localPaths)
}

func fileListPayload(p Payload, localPaths []string) (Payload, error) {
	value, err := EncodePathList(localPaths)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Type: TypeFiles, Value: value, Search: p.Search}, nil
}

// DecodePathList parses the JSON array of paths stored in a files payload.
func DecodePathList(value string) ([]string, error) {
	var paths []string
	if err := json.Unmarshal([]byte(value), &paths); err != nil {
		return nil, fmt.Errorf("decode file list: %w", err)
	}
	return paths, nil
}

// EncodePathList encodes paths as the JSON array stored in a files payload.
func EncodePathList(paths []string) (string, error) {
	if paths == nil {
		paths = []string{}
	}
	b, err := json.Marshal(paths)
	if err != nil {
		return "", fmt.Errorf("encode file list: %w", err)
	}
	return string(b), nil
}

// BaseName returns the last element of a path written with either slash
// or backslash separators, so paths recorded on another OS still resolve.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return filepath.Base(path)
}
