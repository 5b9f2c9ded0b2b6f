// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the clipboard sync client runtime.
//
// It wires client services, the clipboard watcher and configuration reloads
// into a single process lifecycle, and runs the one-shot push and pull
// commands.
package client
