package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

// SnapshotFunc returns the sync configuration currently in effect.
type SnapshotFunc func() config.SyncConfig

// ClipboardWatcher polls the local clipboard and hands every change to the
// sync coordinator. Content present when the watcher starts is not
// treated as a change.
type ClipboardWatcher struct {
	clipboard clipboard.Clipboard
	sync      service.ClientSyncService
	snapshot  SnapshotFunc
	ids       service.IDGenerator
	interval  time.Duration

	logger *logger.Logger

	last    string
	lastErr string
}

func NewClipboardWatcher(
	cb clipboard.Clipboard,
	syncService service.ClientSyncService,
	snapshot SnapshotFunc,
	ids service.IDGenerator,
	interval time.Duration,
	logger *logger.Logger,
) *ClipboardWatcher {
	return &ClipboardWatcher{
		clipboard: cb,
		sync:      syncService,
		snapshot:  snapshot,
		ids:       ids,
		interval:  interval,
		logger:    logger,
	}
}

// Run implements Worker.
func (w *ClipboardWatcher) Run(ctx context.Context) {
	if p, err := w.clipboard.Read(ctx); err == nil {
		w.last = p.Signature()
	}

	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("clipboard watcher started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("clipboard watcher stopped")
			return
		case <-t.C:
			w.poll(ctx)
		}
	}
}

func (w *ClipboardWatcher) poll(ctx context.Context) {
	p, err := w.clipboard.Read(ctx)
	if err != nil {
		// the same read error repeats on every tick
		if err.Error() != w.lastErr {
			w.lastErr = err.Error()
			w.logger.Warn().Err(err).Msg("clipboard read failed")
		}
		return
	}
	w.lastErr = ""

	if p.Value == "" {
		return
	}
	sig := p.Signature()
	if sig == w.last {
		return
	}
	w.last = sig

	opCtx := utils.WithOperationID(ctx, w.ids.Generate())
	outcome, err := w.sync.HandleCapture(opCtx, w.snapshot(), p)
	if err != nil {
		w.logger.Warn().Err(err).Msg("clipboard change not uploaded")
		return
	}
	w.logger.Debug().
		Str("type", string(p.Type.Normalize())).
		Str("outcome", outcome.String()).
		Msg("clipboard change handled")
}
