package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/internal/workers"
	"github.com/MKhiriev/go-clip-sync/models"
)

// ErrUploadRejected is returned by the push command when the relay refuses
// the payload.
var ErrUploadRejected = errors.New("upload rejected by relay")

// ConfigLoader builds a fresh client configuration from flag arguments.
type ConfigLoader func(args []string) (*config.ClientConfig, error)

type App struct {
	services  *service.ClientServices
	clipboard clipboard.Clipboard
	ids       service.IDGenerator
	buildInfo models.AppBuildInfo

	args   []string
	load   ConfigLoader
	config atomic.Pointer[config.ClientConfig]

	// reload delivers configuration reload requests; SIGHUP in production.
	reload chan os.Signal

	logger *logger.Logger
}

// NewApp builds the client runtime. args are the flag arguments cfg was
// loaded from; load re-reads them on every reload request.
func NewApp(
	cfg *config.ClientConfig,
	services *service.ClientServices,
	cb clipboard.Clipboard,
	ids service.IDGenerator,
	buildInfo models.AppBuildInfo,
	args []string,
	load ConfigLoader,
	logger *logger.Logger,
) *App {
	a := &App{
		services:  services,
		clipboard: cb,
		ids:       ids,
		buildInfo: buildInfo,
		args:      args,
		load:      load,
		reload:    make(chan os.Signal, 1),
		logger:    logger,
	}
	a.config.Store(cfg)
	return a
}

// Run implements Client.
func (a *App) Run(ctx context.Context, cmd Command) error {
	ctx = utils.WithOperationID(ctx, a.ids.Generate())

	switch cmd {
	case CommandDaemon:
		return a.runDaemon(ctx)
	case CommandPush:
		return a.push(ctx)
	case CommandPull:
		return a.pull(ctx, false)
	case CommandPullPaste:
		return a.pull(ctx, true)
	case CommandVersion:
		fmt.Print(a.buildInfo.String())
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) snapshot() config.SyncConfig {
	return a.config.Load().Sync
}

func (a *App) push(ctx context.Context) error {
	p, err := a.clipboard.Read(ctx)
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	if p.Value == "" {
		a.logger.Info().Msg("clipboard is empty, nothing to push")
		return nil
	}

	outcome, err := a.services.SyncService.Upload(ctx, a.snapshot(), p)
	if err != nil {
		return err
	}
	if outcome == service.OutcomeRejected {
		return ErrUploadRejected
	}

	a.logger.Info().Str("outcome", outcome.String()).Msg("push finished")
	return nil
}

func (a *App) pull(ctx context.Context, paste bool) error {
	p, err := a.services.SyncService.Download(ctx, a.snapshot(), nil, paste)
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("type", string(p.Type.Normalize())).
		Bool("paste", paste).
		Msg("pull finished")
	return nil
}

func (a *App) runDaemon(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	signal.Notify(a.reload, syscall.SIGHUP)
	defer signal.Stop(a.reload)

	cfg := a.config.Load()
	a.services.SyncService.Reconfigure(ctx, cfg.Sync)
	defer a.services.SyncService.Close()

	watcher := workers.NewClipboardWatcher(
		a.clipboard,
		a.services.SyncService,
		a.snapshot,
		a.ids,
		cfg.Workers.ClipboardPollInterval,
		a.logger,
	)

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		workers.NewWorkers(watcher).Run(ctx)
	}()

	a.logger.Info().
		Str("room_id", cfg.Sync.RoomID).
		Bool("upload", cfg.Sync.Upload.Enabled).
		Bool("download", cfg.Sync.Download.Enabled).
		Msg("daemon started")

	for {
		select {
		case <-ctx.Done():
			<-workersDone
			a.logger.Info().Msg("daemon stopped gracefully")
			return nil
		case <-a.reload:
			a.reloadConfig(ctx)
		}
	}
}

// reloadConfig swaps in a freshly loaded configuration. A configuration that
// fails to load or validate is logged and the current one stays in effect.
func (a *App) reloadConfig(ctx context.Context) {
	cfg, err := a.load(a.args)
	if err != nil {
		a.logger.Error().Err(err).Msg("config reload failed, keeping current config")
		return
	}

	prev := a.config.Swap(cfg)
	if prev.Workers.ClipboardPollInterval != cfg.Workers.ClipboardPollInterval ||
		prev.PasteCommand != cfg.PasteCommand {
		a.logger.Warn().Msg("poll interval and paste command changes apply after restart")
	}

	a.services.SyncService.Reconfigure(ctx, cfg.Sync)
	a.logger.Info().Msg("config reloaded")
}
