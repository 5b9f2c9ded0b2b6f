package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-clip-sync/models"
)

// DirectionPolicy is the resolved sync policy of one direction.
type DirectionPolicy struct {
	// Enabled turns automatic sync in this direction on.
	Enabled bool
	// Types is the allow-list of clipboard types synced automatically.
	Types []models.ClipboardType
	// MaxSizeBytes is the size ceiling in bytes. 0 means unlimited.
	MaxSizeBytes int64
	// Tooltip enables notifications about sync results.
	Tooltip bool
}

// Allows reports whether t passes the type allow-list.
func (p DirectionPolicy) Allows(t models.ClipboardType) bool {
	return t.In(p.Types)
}

// TooLarge reports whether size hits the ceiling. A zero ceiling never does.
//
// size is in bytes and the ceiling comes from a megabyte setting, so a
// 5 MB ceiling lets a 10 byte push through. Older clients compared the
// configured number against the raw size field with no unit conversion.
func (p DirectionPolicy) TooLarge(size int64) bool {
	return p.MaxSizeBytes > 0 && size >= p.MaxSizeBytes
}

func (p DirectionPolicy) equal(o DirectionPolicy) bool {
	return p.Enabled == o.Enabled &&
		p.MaxSizeBytes == o.MaxSizeBytes &&
		p.Tooltip == o.Tooltip &&
		slices.Equal(p.Types, o.Types)
}

// SyncConfig is the immutable snapshot handed to every sync operation.
// Callers replace it as a whole on reload; it is never mutated in place.
type SyncConfig struct {
	// ServerAddress is the relay base address.
	ServerAddress string
	// RoomID identifies the relay room.
	RoomID string
	// Secret is the shared room passphrase. Empty disables encryption.
	Secret string
	// Upload is the policy for outgoing clipboard changes.
	Upload DirectionPolicy
	// Download is the policy for incoming clipboard changes.
	Download DirectionPolicy
	// SyncDir is where downloaded attachments are written.
	SyncDir string
	// RequestTimeout bounds a single metadata request.
	RequestTimeout time.Duration
	// AttachmentTimeout bounds a single attachment download.
	AttachmentTimeout time.Duration
}

// Equal reports whether s and o describe the same configuration.
func (s SyncConfig) Equal(o SyncConfig) bool {
	return s.ServerAddress == o.ServerAddress &&
		s.RoomID == o.RoomID &&
		s.Secret == o.Secret &&
		s.SyncDir == o.SyncDir &&
		s.RequestTimeout == o.RequestTimeout &&
		s.AttachmentTimeout == o.AttachmentTimeout &&
		s.Upload.equal(o.Upload) &&
		s.Download.equal(o.Download)
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ClipboardPollInterval defines how often the clipboard watcher runs.
	ClipboardPollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Sync is the snapshot passed to sync operations.
	Sync SyncConfig
	// Workers contains background job settings.
	Workers ClientWorkers
	// PasteCommand is the keystroke command run after "pull-paste".
	PasteCommand string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFile is the log file path; empty means next to the executable.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientConfig()

	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientConfig() *ClientConfig {
	return &ClientConfig{
		Sync: SyncConfig{
			ServerAddress:     cfg.Relay.ServerAddress,
			RoomID:            cfg.Relay.RoomID,
			Secret:            cfg.Relay.Secret,
			Upload:            cfg.Upload.policy(),
			Download:          cfg.Download.policy(),
			SyncDir:           cfg.Storage.SyncDir,
			RequestTimeout:    cfg.Relay.RequestTimeout,
			AttachmentTimeout: cfg.Relay.AttachmentTimeout,
		},
		Workers:      ClientWorkers{ClipboardPollInterval: cfg.Workers.ClipboardPollInterval},
		PasteCommand: cfg.Paste.Command,
		LogLevel:     cfg.Log.Level,
		LogFile:      cfg.Log.File,
	}
}

func (d Direction) policy() DirectionPolicy {
	p := DirectionPolicy{
		Types: models.ParseClipboardTypes(d.Types),
	}
	if d.Enabled != nil {
		p.Enabled = *d.Enabled
	}
	if d.Tooltip != nil {
		p.Tooltip = *d.Tooltip
	}
	if d.MaxSizeMB != nil {
		p.MaxSizeBytes = *d.MaxSizeMB * 1024 * 1024
	}
	return p
}
