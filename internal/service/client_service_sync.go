package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/app"
	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/notify"
	"github.com/MKhiriev/go-clip-sync/models"
)

// maxParallelAttachments bounds concurrent attachment downloads of one payload.
const maxParallelAttachments = 4

type clientSyncService struct {
	transfer  ClientTransferService
	live      ClientLiveChannel
	clipboard clipboard.Clipboard
	paster    clipboard.Paster
	notifier  notify.Notifier
	marker    *SyncMarker

	logger *logger.Logger

	// opMu serializes uploads and downloads.
	opMu sync.Mutex

	// liveMu guards the live channel state. It is never held together with
	// opMu: Stop waits for a push handler that may be waiting on opMu.
	liveMu  sync.Mutex
	started bool
	current config.SyncConfig
}

// NewClientSyncService wires the sync coordinator. marker is shared with
// nothing else; it is passed in so that callers and tests can observe it.
func NewClientSyncService(
	transfer ClientTransferService,
	live ClientLiveChannel,
	cb clipboard.Clipboard,
	paster clipboard.Paster,
	notifier notify.Notifier,
	marker *SyncMarker,
	logger *logger.Logger,
) ClientSyncService {
	if marker == nil {
		marker = NewSyncMarker()
	}
	return &clientSyncService{
		transfer:  transfer,
		live:      live,
		clipboard: cb,
		paster:    paster,
		notifier:  notifier,
		marker:    marker,
		logger:    logger,
	}
}

func (s *clientSyncService) log(ctx context.Context) *logger.Logger {
	return operationLogger(ctx, s.logger)
}

func (s *clientSyncService) HandleCapture(ctx context.Context, cfg config.SyncConfig, p models.Payload) (UploadOutcome, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	switch {
	case !cfg.Upload.Enabled:
		return OutcomeSkipped, nil
	case p.Value == "":
		return OutcomeSkipped, nil
	case !cfg.Upload.Allows(p.Type):
		s.log(ctx).Debug().Str("type", string(p.Type.Normalize())).Msg("capture skipped: type not synced")
		return OutcomeSkipped, nil
	case s.marker.Matches(p):
		s.log(ctx).Debug().Msg("capture skipped: already synchronized")
		return OutcomeSkipped, nil
	}

	outcome, err := s.transfer.Upload(ctx, cfg, p, cfg.Upload.MaxSizeBytes)
	if err != nil {
		s.log(ctx).Warn().Err(err).Msg("automatic upload failed")
		if cfg.Upload.Tooltip {
			s.notifier.Notify(ctx, failureMessage("upload", err))
		}
		return outcome, err
	}
	if outcome == OutcomeUploaded {
		s.marker.Set(p)
	}

	return outcome, nil
}

func (s *clientSyncService) Upload(ctx context.Context, cfg config.SyncConfig, p models.Payload) (UploadOutcome, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	outcome, err := s.transfer.Upload(ctx, cfg, p, 0)
	if err != nil {
		s.log(ctx).Error().Err(err).Msg("upload failed")
		if cfg.Upload.Tooltip {
			s.notifier.Notify(ctx, failureMessage("upload", err))
		}
		return outcome, err
	}
	if outcome == OutcomeUploaded {
		s.marker.Set(p)
	}

	return outcome, nil
}

func (s *clientSyncService) Download(ctx context.Context, cfg config.SyncConfig, summary *models.PushSummary, paste bool) (models.Payload, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	out, err := s.download(ctx, cfg, summary, paste)
	if err != nil {
		s.log(ctx).Error().Err(err).Msg("download failed")
		if cfg.Download.Tooltip {
			s.notifier.Notify(ctx, failureMessage("download", err))
		}
	}

	return out, err
}

func (s *clientSyncService) download(ctx context.Context, cfg config.SyncConfig, summary *models.PushSummary, paste bool) (models.Payload, error) {
	p, err := s.transfer.Resolve(ctx, cfg, summary)
	if err != nil {
		return models.Payload{}, err
	}

	variant := p.Variant()
	attachments, err := variant.RemoteAttachments(p.Value)
	if err != nil {
		return models.Payload{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	paths := make([]string, len(attachments))
	if len(attachments) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(maxParallelAttachments)
		for i, a := range attachments {
			g.Go(func() error {
				path, err := s.transfer.FetchAttachment(gctx, cfg, a.Name, a.Index)
				if err != nil {
					return err
				}
				paths[i] = path
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return models.Payload{}, fmt.Errorf("%w: %w", ErrPartialAttachment, err)
		}
	}

	out, err := variant.Assemble(p, paths)
	if err != nil {
		return models.Payload{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	// the marker goes first so that the watcher never sees the write as a
	// fresh local change
	s.marker.Set(out)
	if err = s.clipboard.Write(ctx, out); err != nil {
		return models.Payload{}, fmt.Errorf("write clipboard: %w", err)
	}

	s.log(ctx).Info().
		Str("type", string(out.Type.Normalize())).
		Int("attachments", len(paths)).
		Msg("clipboard updated from relay")

	if cfg.Download.Tooltip {
		s.notifier.Notify(ctx, out.Value)
	}

	if paste {
		if err = s.paster.Paste(ctx); err != nil {
			return out, fmt.Errorf("paste: %w", err)
		}
	}

	return out, nil
}

func (s *clientSyncService) HandlePush(ctx context.Context, cfg config.SyncConfig, summary models.PushSummary) {
	if _, err := s.Download(ctx, cfg, &summary, false); err != nil && ctx.Err() == nil {
		s.log(ctx).Warn().Err(err).Msg("push not applied")
	}
}

func (s *clientSyncService) Reconfigure(ctx context.Context, cfg config.SyncConfig) {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()

	if s.started && s.current.Equal(cfg) {
		s.logger.Debug().Msg("configuration unchanged, live channel kept")
		return
	}

	s.live.Start(ctx, cfg, s.HandlePush)
	s.current = cfg
	s.started = true
	s.logger.Info().
		Bool("upload", cfg.Upload.Enabled).
		Bool("download", cfg.Download.Enabled).
		Str("room_id", cfg.RoomID).
		Msg("configuration applied")
}

func (s *clientSyncService) Close() {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()

	s.live.Stop()
	s.started = false
}

// failureMessage renders err as a short notification text.
func failureMessage(op string, err error) string {
	switch {
	case errors.Is(err, adapter.ErrConfiguration):
		return app.MsgRelayNotConfigured
	case errors.Is(err, adapter.ErrEmptyRoom):
		return app.MsgNothingToDownload
	case errors.Is(err, adapter.ErrServer):
		return app.MsgServerFailed
	case errors.Is(err, clipboard.ErrPasteUnavailable):
		return app.MsgPasteUnavailable
	default:
		return fmt.Sprintf(app.MsgOperationFailed, op, err)
	}
}
