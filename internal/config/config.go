// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-clip-sync client. It aggregates all sub-configurations and is populated
// by merging values from defaults, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with CLIP_ (see parseEnv).
type StructuredConfig struct {
	// Relay holds the relay server address, the room and the shared secret.
	Relay Relay `envPrefix:"RELAY_"`

	// Upload holds the policy for sending local clipboard changes.
	Upload Direction `envPrefix:"UPLOAD_"`

	// Download holds the policy for receiving pushed clipboard changes.
	Download Direction `envPrefix:"DOWNLOAD_"`

	// Storage holds the directory used for downloaded attachments.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds settings of the background clipboard watcher.
	Workers Workers `envPrefix:"WORKERS_"`

	// Paste holds settings of the paste-after-download action.
	Paste Paste `envPrefix:"PASTE_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CLIP_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Relay holds the coordinates of the relay room.
type Relay struct {
	// ServerAddress is the relay base address, e.g. "https://relay.example.com".
	// A scheme-less address is treated as http.
	// Env: CLIP_RELAY_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RoomID identifies the group of clients sharing clipboard state.
	// Env: CLIP_RELAY_ROOM_ID
	RoomID string `env:"ROOM_ID"`

	// Secret is the shared room passphrase. Empty disables encryption.
	// Env: CLIP_RELAY_SECRET
	Secret string `env:"SECRET"`

	// RequestTimeout bounds a single metadata request (upload, fetch).
	// Env: CLIP_RELAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AttachmentTimeout bounds a single attachment download.
	// Env: CLIP_RELAY_ATTACHMENT_TIMEOUT
	AttachmentTimeout time.Duration `env:"ATTACHMENT_TIMEOUT"`
}

// Direction holds the sync policy of one direction (upload or download).
// Toggles are pointers so that an explicit "false" from a later source
// overrides a "true" from an earlier one when configs are merged.
type Direction struct {
	// Enabled turns automatic sync in this direction on.
	// Env: CLIP_UPLOAD_ENABLED / CLIP_DOWNLOAD_ENABLED
	Enabled *bool `env:"ENABLED"`

	// Types is the allow-list of clipboard types synced automatically.
	// Env: CLIP_UPLOAD_TYPES / CLIP_DOWNLOAD_TYPES (comma separated)
	Types []string `env:"TYPES" envSeparator:","`

	// MaxSizeMB is the size ceiling in megabytes. 0 means unlimited.
	// Env: CLIP_UPLOAD_MAX_SIZE_MB / CLIP_DOWNLOAD_MAX_SIZE_MB
	MaxSizeMB *int64 `env:"MAX_SIZE_MB"`

	// Tooltip enables notifications about sync results in this direction.
	// Env: CLIP_UPLOAD_TOOLTIP / CLIP_DOWNLOAD_TOOLTIP
	Tooltip *bool `env:"TOOLTIP"`
}

// Storage holds local file-system settings.
type Storage struct {
	// SyncDir is where downloaded attachments are written.
	// Env: CLIP_STORAGE_SYNC_DIR
	SyncDir string `env:"SYNC_DIR"`
}

// Workers holds background worker settings.
type Workers struct {
	// ClipboardPollInterval is how often the local clipboard is checked
	// for changes.
	// Env: CLIP_WORKERS_CLIPBOARD_POLL_INTERVAL
	ClipboardPollInterval time.Duration `env:"CLIPBOARD_POLL_INTERVAL"`
}

// Paste holds settings of the paste action run after "pull-paste".
type Paste struct {
	// Command is the program (with arguments) that sends the paste
	// keystroke, e.g. "xdotool key ctrl+v". Empty disables pasting.
	// Env: CLIP_PASTE_COMMAND
	Command string `env:"COMMAND"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: CLIP_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Empty logs next to the executable.
	// Env: CLIP_LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later sources override earlier
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
