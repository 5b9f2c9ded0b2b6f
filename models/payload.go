// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ClipboardType identifies the kind of content a [Payload] carries.
// The zero value is treated as [TypeText].
type ClipboardType string

const (
	// TypeText is plain UTF-8 text. Value holds the literal text.
	TypeText ClipboardType = "text"

	// TypeHTML is rich HTML markup. Value holds the literal markup.
	TypeHTML ClipboardType = "html"

	// TypeRTF is Rich Text Format content. Value holds the literal RTF.
	TypeRTF ClipboardType = "rtf"

	// TypeImage is a single image. Value holds the local path of the image
	// file; the file bytes travel as one attachment.
	TypeImage ClipboardType = "image"

	// TypeFiles is a list of files. Value holds a JSON-encoded array of
	// local paths; each file travels as one attachment, in array order.
	TypeFiles ClipboardType = "files"
)

// Normalize returns t, or [TypeText] when t is empty.
func (t ClipboardType) Normalize() ClipboardType {
	if t == "" {
		return TypeText
	}
	return t
}

// Valid reports whether t is one of the known clipboard types.
func (t ClipboardType) Valid() bool {
	switch t.Normalize() {
	case TypeText, TypeHTML, TypeRTF, TypeImage, TypeFiles:
		return true
	}
	return false
}

// HasAttachments reports whether payloads of this type carry attachment
// blobs that are transferred separately from the metadata.
func (t ClipboardType) HasAttachments() bool {
	switch t.Normalize() {
	case TypeImage, TypeFiles:
		return true
	}
	return false
}

// In reports whether t (normalized) is contained in allowed.
func (t ClipboardType) In(allowed []ClipboardType) bool {
	n := t.Normalize()
	for _, a := range allowed {
		if a.Normalize() == n {
			return true
		}
	}
	return false
}

// ParseClipboardTypes converts a list of raw type names into
// [ClipboardType] values. Blank entries are skipped.
func ParseClipboardTypes(raw []string) []ClipboardType {
	out := make([]ClipboardType, 0, len(raw))
	for _, r := range raw {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		out = append(out, ClipboardType(r))
	}
	return out
}

// Payload is one unit of clipboard content exchanged through the relay.
type Payload struct {
	// Type is the content kind. Empty means text.
	Type ClipboardType `json:"type,omitempty"`

	// Value is interpreted according to Type: literal text for text, html
	// and rtf; a local file path for image; a JSON array of local file
	// paths for files.
	Value string `json:"value"`

	// Search is an optional searchable rendition of the content. It is
	// passed through untouched.
	Search *string `json:"search,omitempty"`
}

// Signature returns the "type|value" key used to recognise a payload that
// was already synchronized in either direction.
func (p Payload) Signature() string {
	return string(p.Type.Normalize()) + "|" + p.Value
}

// Variant returns the type-specific behaviour of the payload.
func (p Payload) Variant() Variant {
	return VariantOf(p.Type)
}

// PushSummary is the frame the relay pushes on the live channel when a
// room member uploads new content.
type PushSummary struct {
	Type   ClipboardType `json:"type,omitempty"`
	Value  string        `json:"value"`
	Search *string       `json:"search,omitempty"`

	// Size is the total byte size of the content, including every
	// attachment. It lets subscribers gate large downloads without a fetch.
	Size int64 `json:"size"`
}

// Payload returns the summary without its size.
func (s PushSummary) Payload() Payload {
	return Payload{Type: s.Type, Value: s.Value, Search: s.Search}
}
