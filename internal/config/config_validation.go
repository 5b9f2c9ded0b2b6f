// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-clip-sync/models"
)

// validate checks that the final merged [StructuredConfig] is structurally
// sound: every listed clipboard type is known and size ceilings are not
// negative. Missing relay coordinates are not an error here; the adapter
// rejects them per request so the daemon can start unconfigured.
func (cfg *StructuredConfig) validate() error {
	for name, d := range map[string]Direction{"upload": cfg.Upload, "download": cfg.Download} {
		for _, t := range models.ParseClipboardTypes(d.Types) {
			if !t.Valid() {
				return fmt.Errorf("%w: %s: unknown clipboard type %q", ErrInvalidDirectionConfigs, name, t)
			}
		}
		if d.MaxSizeMB != nil && *d.MaxSizeMB < 0 {
			return fmt.Errorf("%w: %s: negative max size", ErrInvalidDirectionConfigs, name)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Sync.RequestTimeout <= 0 || cfg.Sync.AttachmentTimeout <= 0 {
		return ErrInvalidRelayConfigs
	}

	if cfg.Sync.SyncDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.ClipboardPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
