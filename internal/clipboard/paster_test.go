package clipboard

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandPaster_Empty(t *testing.T) {
	err := NewCommandPaster("   ").Paste(context.Background())
	assert.ErrorIs(t, err, ErrPasteUnavailable)
}

func TestCommandPaster_Runs(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true is not available")
	}
	assert.NoError(t, NewCommandPaster("true").Paste(context.Background()))
}

func TestCommandPaster_Fails(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false is not available")
	}
	assert.Error(t, NewCommandPaster("false").Paste(context.Background()))
}

func TestCommandPaster_MissingBinary(t *testing.T) {
	assert.Error(t, NewCommandPaster("definitely-not-a-paste-tool-7f3a").Paste(context.Background()))
}
