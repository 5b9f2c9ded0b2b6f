// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// clipboard sync client.
//
// All Msg* constants are human-readable message strings that are shown in
// sync notifications to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the client.
package app

const (
	// MsgServerFailed is shown when the relay answers with a 5xx status.
	MsgServerFailed = "server failed"

	// MsgUploadRejected is shown when the relay answers an upload with a
	// 4xx status and no message of its own. It takes the status code.
	MsgUploadRejected = "upload rejected with status %d"

	// MsgRelayNotConfigured is shown when the server address or the room id
	// is missing.
	MsgRelayNotConfigured = "relay is not configured"

	// MsgNothingToDownload is shown when the room has no content yet.
	MsgNothingToDownload = "nothing to download"

	// MsgPasteUnavailable is shown when pull-paste runs without a paste
	// command.
	MsgPasteUnavailable = "paste is not available"

	// MsgOperationFailed prefixes any other failure. It takes the operation
	// name and the error text.
	MsgOperationFailed = "%s failed: %s"
)
