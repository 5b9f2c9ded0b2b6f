package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

// defaultConfig holds the out-of-the-box settings:
// both directions off, text kinds only, no size ceiling, tooltips on.
func defaultConfig() *StructuredConfig {
	defaultTypes := []string{"text", "rtf", "html"}

	return &StructuredConfig{
		Relay: Relay{
			RequestTimeout:    15 * time.Second,
			AttachmentTimeout: 60 * time.Second,
		},
		Upload: Direction{
			Enabled:   ptr(false),
			Types:     defaultTypes,
			MaxSizeMB: ptr(int64(0)),
			Tooltip:   ptr(true),
		},
		Download: Direction{
			Enabled:   ptr(false),
			Types:     defaultTypes,
			MaxSizeMB: ptr(int64(0)),
			Tooltip:   ptr(true),
		},
		Storage: Storage{
			SyncDir: defaultSyncDir(),
		},
		Workers: Workers{
			ClipboardPollInterval: 500 * time.Millisecond,
		},
		Log: Log{
			Level: "info",
		},
	}
}

func defaultSyncDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "go-clip-sync", "sync")
}

func ptr[T any](v T) *T {
	return &v
}
