package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-clip-sync/models"
)

func TestSyncMarker(t *testing.T) {
	m := NewSyncMarker()

	assert.False(t, m.Matches(models.Payload{}), "empty marker matches nothing")

	m.Set(models.Payload{Value: "a"})
	assert.True(t, m.Matches(models.Payload{Type: models.TypeText, Value: "a"}), "empty type is text")
	assert.False(t, m.Matches(models.Payload{Type: models.TypeHTML, Value: "a"}))
	assert.False(t, m.Matches(models.Payload{Value: "b"}))

	m.Set(models.Payload{Type: models.TypeHTML, Value: "a"})
	assert.False(t, m.Matches(models.Payload{Value: "a"}))
}
