package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/app"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/crypto"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/notify"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
)

const fallbackAttachment = "attachment"

type clientTransferService struct {
	adapter  adapter.RelayAdapter
	codec    crypto.Codec
	files    store.FileStore
	notifier notify.Notifier
	ids      IDGenerator

	logger *logger.Logger
}

// NewClientTransferService wires a [ClientTransferService].
func NewClientTransferService(
	relay adapter.RelayAdapter,
	codec crypto.Codec,
	files store.FileStore,
	notifier notify.Notifier,
	ids IDGenerator,
	logger *logger.Logger,
) ClientTransferService {
	return &clientTransferService{
		adapter:  relay,
		codec:    codec,
		files:    files,
		notifier: notifier,
		ids:      ids,
		logger:   logger,
	}
}

func (s *clientTransferService) log(ctx context.Context) *logger.Logger {
	return operationLogger(ctx, s.logger)
}

func (s *clientTransferService) Upload(ctx context.Context, cfg config.SyncConfig, p models.Payload, maxSizeBytes int64) (UploadOutcome, error) {
	// fail fast on a missing relay address before touching any file
	if _, err := s.adapter.BuildURL(cfg, adapter.PathSync, nil); err != nil {
		return OutcomeSkipped, err
	}

	attachments, err := p.Variant().Attachments(p.Value)
	if err != nil {
		return OutcomeSkipped, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	value, err := s.codec.EncryptString(p.Value, cfg.Secret)
	if err != nil {
		return OutcomeSkipped, fmt.Errorf("encrypt value: %w", err)
	}

	req := models.UploadRequest{
		Type:   p.Type.Normalize(),
		Value:  value,
		Search: p.Search,
		Blobs:  make([]models.NamedBlob, 0, len(attachments)),
	}

	for _, a := range attachments {
		blob, err := s.files.ReadFile(ctx, a.Path)
		if err != nil {
			return OutcomeSkipped, fmt.Errorf("read attachment %d: %w", a.Index, err)
		}
		encrypted, err := s.codec.EncryptBlob(blob, cfg.Secret)
		if err != nil {
			return OutcomeSkipped, fmt.Errorf("encrypt attachment %d: %w", a.Index, err)
		}
		req.Blobs = append(req.Blobs, models.NamedBlob{Name: a.Name, Blob: encrypted})
	}

	if p.Type.HasAttachments() && maxSizeBytes > 0 && req.BlobsSize() >= maxSizeBytes {
		s.log(ctx).Info().
			Str("type", string(req.Type)).
			Int64("size", req.BlobsSize()).
			Int64("max_size", maxSizeBytes).
			Msg("upload skipped: attachments exceed size ceiling")
		return OutcomeSkipped, nil
	}

	resp, err := s.adapter.Upload(ctx, cfg, req)
	if err != nil {
		return OutcomeSkipped, fmt.Errorf("upload: %w", err)
	}

	outcome := OutcomeRejected
	var message string
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		outcome = OutcomeUploaded
		message = p.Value
	case resp.StatusCode < 500:
		message = resp.Message
		if message == "" {
			message = fmt.Sprintf(app.MsgUploadRejected, resp.StatusCode)
		}
	default:
		message = app.MsgServerFailed
	}

	s.log(ctx).Info().
		Str("type", string(req.Type)).
		Int("status", resp.StatusCode).
		Str("outcome", outcome.String()).
		Msg("upload finished")

	if cfg.Upload.Tooltip {
		s.notifier.Notify(ctx, message)
	}

	return outcome, nil
}

func (s *clientTransferService) FetchLatest(ctx context.Context, cfg config.SyncConfig) (models.Payload, error) {
	p, err := s.adapter.FetchLatest(ctx, cfg)
	if err != nil {
		return models.Payload{}, err
	}

	value, err := s.codec.DecryptString(p.Value, cfg.Secret)
	if err != nil {
		return models.Payload{}, fmt.Errorf("decrypt latest payload: %w", err)
	}
	p.Value = value

	return p, nil
}

func (s *clientTransferService) Resolve(ctx context.Context, cfg config.SyncConfig, summary *models.PushSummary) (models.Payload, error) {
	if summary == nil {
		return s.FetchLatest(ctx, cfg)
	}

	p := summary.Payload()
	value, err := s.codec.DecryptString(p.Value, cfg.Secret)
	if err != nil {
		return models.Payload{}, fmt.Errorf("decrypt pushed payload: %w", err)
	}
	p.Value = value

	return p, nil
}

func (s *clientTransferService) FetchAttachment(ctx context.Context, cfg config.SyncConfig, filename string, index int) (string, error) {
	ctx, cancel := boundedContext(ctx, cfg.AttachmentTimeout)
	defer cancel()

	blob, err := s.adapter.FetchAttachment(ctx, cfg, index)
	if err != nil {
		return "", err
	}

	plain, err := s.codec.DecryptBlob(blob, cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("decrypt attachment %d: %w", index, err)
	}

	if err = s.files.EnsureDir(ctx, cfg.SyncDir); err != nil {
		return "", fmt.Errorf("prepare sync dir: %w", err)
	}

	path := filepath.Join(cfg.SyncDir, s.ids.Generate()+"-"+safeFileName(filename))
	if err = s.files.WriteFile(ctx, path, plain.Data); err != nil {
		return "", fmt.Errorf("store attachment %d: %w", index, err)
	}

	s.log(ctx).Debug().
		Int("index", index).
		Str("path", path).
		Int64("size", plain.Size()).
		Msg("attachment stored")

	return path, nil
}

// safeFileName keeps only the last element of a remote name so it cannot
// escape the sync directory.
func safeFileName(name string) string {
	name = strings.TrimSpace(models.BaseName(name))
	if name == "" || name == "." || name == ".." {
		return fallbackAttachment
	}
	return name
}
