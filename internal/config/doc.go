// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the go-clip-sync client configuration.
//
// Values are merged from four sources, later ones overriding earlier
// non-zero fields: built-in defaults, CLIP_* environment variables,
// command-line flags and an optional JSON file (-c / -config / CLIP_CONFIG).
// Sync toggles are pointers so an explicit false survives the merge.
//
// The merged [StructuredConfig] is reduced to a [ClientConfig] whose
// [SyncConfig] is the immutable snapshot passed to every sync operation.
// Size ceilings are entered in megabytes and carried in bytes.
package config
