package service

import (
	"context"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/models"
)

// UploadOutcome tells what happened to a payload handed to an upload.
type UploadOutcome int

const (
	// OutcomeSkipped means the payload was not sent: a sync gate (enable
	// flag, type list, loop marker or size ceiling) dropped it. It is a
	// policy decision, not a failure.
	OutcomeSkipped UploadOutcome = iota
	// OutcomeUploaded means the relay accepted the payload with a 2xx status.
	OutcomeUploaded
	// OutcomeRejected means the relay answered with a non-2xx status.
	OutcomeRejected
)

// String returns a short lower-case name of the outcome.
func (o UploadOutcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUploaded:
		return "uploaded"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// IDGenerator produces unique identifiers.
type IDGenerator interface {
	Generate() string
}

// ClientTransferService moves single payloads and attachments between the
// local machine and the relay. It owns encryption and the upload size
// policy but no sync state.
type ClientTransferService interface {
	// Upload encrypts p, reads and encrypts its attachment files and posts
	// everything to the relay. For image and file payloads with
	// maxSizeBytes > 0, an encrypted attachment total at or above the
	// ceiling returns OutcomeSkipped without any network call. Non-2xx
	// answers return OutcomeRejected and no error; they are reported via
	// notification when cfg.Upload.Tooltip is set.
	Upload(ctx context.Context, cfg config.SyncConfig, p models.Payload, maxSizeBytes int64) (UploadOutcome, error)

	// FetchLatest returns the room's current payload with its value decrypted.
	FetchLatest(ctx context.Context, cfg config.SyncConfig) (models.Payload, error)

	// Resolve returns the payload to download: the room's current payload
	// when summary is nil, or the summary itself with its value decrypted.
	Resolve(ctx context.Context, cfg config.SyncConfig, summary *models.PushSummary) (models.Payload, error)

	// FetchAttachment downloads attachment index, decrypts it and stores it
	// in cfg.SyncDir under a fresh unique prefix followed by filename.
	// It returns the local path. The call is bounded by cfg.AttachmentTimeout.
	FetchAttachment(ctx context.Context, cfg config.SyncConfig, filename string, index int) (string, error)
}

// PushHandler receives push summaries that passed the live channel gates.
// ctx and cfg belong to the subscription the summary arrived on.
type PushHandler func(ctx context.Context, cfg config.SyncConfig, summary models.PushSummary)

// ClientLiveChannel keeps a push subscription to the relay open.
type ClientLiveChannel interface {
	// Start stops any running subscription and, when cfg.Download.Enabled
	// is set, opens a new one that calls handler for every accepted push.
	// The subscription reconnects with backoff until Stop or until ctx is
	// cancelled.
	Start(ctx context.Context, cfg config.SyncConfig, handler PushHandler)

	// Stop ends the running subscription and waits for it. No handler of
	// that subscription runs after Stop returns.
	Stop()
}

// ClientSyncService coordinates uploads and downloads with the local
// clipboard. Whole operations are serialized.
type ClientSyncService interface {
	// HandleCapture is the automatic upload path for a local clipboard
	// change. It uploads only when cfg.Upload.Enabled is set, the type is
	// in cfg.Upload.Types and p is not the payload synchronized last.
	HandleCapture(ctx context.Context, cfg config.SyncConfig, p models.Payload) (UploadOutcome, error)

	// Upload sends p regardless of the upload gates and size ceiling.
	Upload(ctx context.Context, cfg config.SyncConfig, p models.Payload) (UploadOutcome, error)

	// Download fetches the room's payload (or the pushed summary when not
	// nil), downloads every attachment, writes the result to the local
	// clipboard and optionally pastes it. It returns the written payload.
	Download(ctx context.Context, cfg config.SyncConfig, summary *models.PushSummary, paste bool) (models.Payload, error)

	// HandlePush is the [PushHandler] of the live channel. Failures are
	// logged and notified, never returned.
	HandlePush(ctx context.Context, cfg config.SyncConfig, summary models.PushSummary)

	// Reconfigure applies a new configuration snapshot to the live
	// channel, restarting it when the snapshot changed. ctx bounds the
	// lifetime of the subscription.
	Reconfigure(ctx context.Context, cfg config.SyncConfig)

	// Close stops the live channel.
	Close()
}
