// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes cmd. For [CommandDaemon] it blocks until ctx is
	// cancelled or a stop signal arrives.
	Run(ctx context.Context, cmd Command) error
}
