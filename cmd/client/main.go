package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/client"
	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/crypto"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/notify"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "go-clip-sync: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cmd, args, err := client.ParseCommand(os.Args[1:])
	if err != nil {
		return err
	}
	if cmd == client.CommandVersion {
		fmt.Print(buildInfo.String())
		return nil
	}

	cfg, err := config.GetClientConfig(args)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log, closer := logger.NewClientLogger("go-clip-sync-"+string(cmd), cfg.LogLevel, cfg.LogFile)
	defer closer.Close()

	ids := utils.NewUUIDGenerator()
	clientID := ids.Generate()
	log.Debug().Str("client_id", clientID).Str("version", buildInfo.BuildVersion()).Msg("starting client")

	deps := service.ClientDeps{
		Relay:     adapter.NewHTTPRelayAdapter(clientID, "go-clip-sync/"+buildInfo.BuildVersion(), log),
		Codec:     crypto.NewCodec(),
		Files:     store.NewLocalFileStore(log),
		Clipboard: clipboard.NewSystemClipboard(),
		Paster:    clipboard.NewCommandPaster(cfg.PasteCommand),
		Notifier:  notify.NewLogNotifier(log, os.Stdout),
		IDs:       ids,
	}
	services := service.NewClientServices(deps, log)

	app := client.NewApp(cfg, services, deps.Clipboard, ids, buildInfo, args, config.GetClientConfig, log)
	if err = app.Run(context.Background(), cmd); err != nil {
		log.Error().Err(err).Str("command", string(cmd)).Msg("client run error")
		return err
	}

	return nil
}
