package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	helloFrame       = "hello"
	reconnectBase    = time.Second
	reconnectCap     = 30 * time.Second
	reconnectJitter  = 20
	streamEndPause   = time.Second
	messageEventName = "message"
)

// BackoffFactory returns a fresh backoff for one reconnect series.
type BackoffFactory func() retry.Backoff

// DefaultBackoff is the reconnect policy of the live channel: exponential
// from one second, capped at thirty seconds, with 20% jitter.
func DefaultBackoff() retry.Backoff {
	return retry.WithJitterPercent(reconnectJitter,
		retry.WithCappedDuration(reconnectCap, retry.NewExponential(reconnectBase)))
}

type clientLiveChannel struct {
	adapter    adapter.RelayAdapter
	ids        IDGenerator
	newBackoff BackoffFactory
	pause      time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientLiveChannel creates a live channel that subscribes through relay.
// The channel is idle until Start is called. Every accepted push is handled
// under a fresh operation id taken from ids. A nil newBackoff selects
// [DefaultBackoff].
func NewClientLiveChannel(relay adapter.RelayAdapter, ids IDGenerator, newBackoff BackoffFactory, logger *logger.Logger) ClientLiveChannel {
	if newBackoff == nil {
		newBackoff = DefaultBackoff
	}
	return &clientLiveChannel{
		adapter:    relay,
		ids:        ids,
		newBackoff: newBackoff,
		pause:      streamEndPause,
		logger:     logger,
	}
}

// Start implements ClientLiveChannel.
func (c *clientLiveChannel) Start(ctx context.Context, cfg config.SyncConfig, handler PushHandler) {
	c.Stop()

	if !cfg.Download.Enabled {
		c.logger.Debug().Msg("live channel not started: download sync disabled")
		return
	}

	c.mu.Lock()
	liveCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.run(liveCtx, cfg, handler)
	}()
}

// Stop implements ClientLiveChannel. Safe to call when nothing runs.
func (c *clientLiveChannel) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

func (c *clientLiveChannel) run(ctx context.Context, cfg config.SyncConfig, handler PushHandler) {
	c.logger.Info().Str("room_id", cfg.RoomID).Msg("live channel started")
	defer c.logger.Info().Str("room_id", cfg.RoomID).Msg("live channel stopped")

	for {
		body, err := retry.DoValue(ctx, c.newBackoff(), func(ctx context.Context) (io.ReadCloser, error) {
			body, err := c.adapter.Subscribe(ctx, cfg)
			if err == nil {
				return body, nil
			}
			if errors.Is(err, adapter.ErrConfiguration) {
				return nil, err
			}
			c.logger.Warn().Err(err).Msg("live channel connect failed, retrying")
			return nil, retry.RetryableError(err)
		})
		if err != nil {
			if ctx.Err() == nil {
				c.logger.Error().Err(err).Msg("live channel gave up")
			}
			return
		}

		c.logger.Debug().Msg("live channel connected")
		err = c.consume(ctx, cfg, body, handler)
		_ = body.Close()

		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.logger.Warn().Err(err).Msg("live channel stream broke")
		} else {
			c.logger.Info().Msg("live channel stream ended")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.pause):
		}
	}
}

func (c *clientLiveChannel) consume(ctx context.Context, cfg config.SyncConfig, body io.ReadCloser, handler PushHandler) error {
	// unblock the scanner once the subscription is cancelled
	stop := context.AfterFunc(ctx, func() { _ = body.Close() })
	defer stop()

	sc := utils.NewSSEScanner(body)
	for sc.Next() {
		summary, ok := c.accept(cfg, sc.Event())
		if !ok {
			continue
		}
		if ctx.Err() != nil {
			return nil
		}

		opCtx := utils.WithOperationID(ctx, c.ids.Generate())
		handler(opCtx, cfg, summary)
	}

	if ctx.Err() != nil {
		return nil
	}
	return sc.Err()
}

// accept applies the frame filters: keep-alives and unnamed non-message
// events are ignored, unparsable frames are logged and skipped, and pushes
// outside the download policy are dropped.
func (c *clientLiveChannel) accept(cfg config.SyncConfig, ev utils.SSEEvent) (models.PushSummary, bool) {
	if ev.Name != "" && ev.Name != messageEventName {
		return models.PushSummary{}, false
	}

	data := strings.TrimSpace(ev.Data)
	if data == "" || strings.Trim(data, `"`) == helloFrame {
		return models.PushSummary{}, false
	}

	var summary models.PushSummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		c.logger.Warn().Err(err).Str("frame", data).Msg("skip malformed push frame")
		return models.PushSummary{}, false
	}

	if !cfg.Download.Allows(summary.Type) {
		c.logger.Debug().Str("type", string(summary.Type.Normalize())).Msg("push dropped: type not synced")
		return models.PushSummary{}, false
	}
	if cfg.Download.TooLarge(summary.Size) {
		c.logger.Info().
			Int64("size", summary.Size).
			Int64("max_size", cfg.Download.MaxSizeBytes).
			Msg("push dropped: content exceeds size ceiling")
		return models.PushSummary{}, false
	}

	return summary, true
}
