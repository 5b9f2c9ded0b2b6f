package service

import (
	"github.com/MKhiriev/go-clip-sync/internal/adapter"
	"github.com/MKhiriev/go-clip-sync/internal/clipboard"
	"github.com/MKhiriev/go-clip-sync/internal/crypto"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/notify"
	"github.com/MKhiriev/go-clip-sync/internal/store"
)

// ClientDeps holds the infrastructure the client services are built on.
type ClientDeps struct {
	Relay     adapter.RelayAdapter
	Codec     crypto.Codec
	Files     store.FileStore
	Clipboard clipboard.Clipboard
	Paster    clipboard.Paster
	Notifier  notify.Notifier
	IDs       IDGenerator
}

type ClientServices struct {
	TransferService ClientTransferService
	LiveChannel     ClientLiveChannel
	SyncService     ClientSyncService
	Marker          *SyncMarker
}

func NewClientServices(deps ClientDeps, logger *logger.Logger) *ClientServices {
	transferSvc := NewClientTransferService(deps.Relay, deps.Codec, deps.Files, deps.Notifier, deps.IDs, logger)
	live := NewClientLiveChannel(deps.Relay, deps.IDs, nil, logger)
	marker := NewSyncMarker()
	syncSvc := NewClientSyncService(transferSvc, live, deps.Clipboard, deps.Paster, deps.Notifier, marker, logger)

	return &ClientServices{
		TransferService: transferSvc,
		LiveChannel:     live,
		SyncService:     syncSvc,
		Marker:          marker,
	}
}
