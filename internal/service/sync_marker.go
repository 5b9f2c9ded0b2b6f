package service

import (
	"sync"

	"github.com/MKhiriev/go-clip-sync/models"
)

// SyncMarker remembers the signature of the payload that was synchronized
// last in either direction. A local capture equal to it is the echo of a
// download (or a repeat of an upload) and must not be uploaded again.
// The marker lives in memory only.
type SyncMarker struct {
	mu        sync.Mutex
	signature string
}

// NewSyncMarker returns an empty marker.
func NewSyncMarker() *SyncMarker {
	return &SyncMarker{}
}

// Set records p as the last synchronized payload.
func (m *SyncMarker) Set(p models.Payload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signature = p.Signature()
}

// Matches reports whether p is the last synchronized payload.
func (m *SyncMarker) Matches(p models.Payload) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signature != "" && m.signature == p.Signature()
}
