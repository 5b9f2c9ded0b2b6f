package clipboard

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clip-sync/models"
)

// fakeBackend is an in-memory text clipboard.
type fakeBackend struct {
	text     string
	readErr  error
	writeErr error
}

func (f *fakeBackend) ReadAll() (string, error) { return f.text, f.readErr }

func (f *fakeBackend) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func TestSystemClipboard_ReadText(t *testing.T) {
	b := &fakeBackend{text: "copied"}
	c := &systemClipboard{backend: b}

	got, err := c.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Payload{Type: models.TypeText, Value: "copied"}, got)
}

func TestSystemClipboard_WriteText(t *testing.T) {
	b := &fakeBackend{}
	c := &systemClipboard{backend: b}

	require.NoError(t, c.Write(context.Background(), models.Payload{Type: models.TypeHTML, Value: "<i>x</i>"}))
	assert.Equal(t, "<i>x</i>", b.text)

	got, err := c.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.TypeHTML, got.Type)
}

func TestSystemClipboard_FilesRoundTrip(t *testing.T) {
	b := &fakeBackend{}
	c := &systemClipboard{backend: b}
	p := models.Payload{Type: models.TypeFiles, Value: `["/tmp/a.png","/tmp/b.txt"]`}

	require.NoError(t, c.Write(context.Background(), p))
	assert.Equal(t, "/tmp/a.png\n/tmp/b.txt", b.text)

	got, err := c.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, p, got, "reading back a written file list must not look like a new text capture")
}

// ── file lists ───────────────────────────────────────────────────────────────

func TestSystemClipboard_ReadFileList(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "a b.png")
	require.NoError(t, os.WriteFile(one, []byte("1"), 0o600))
	require.NoError(t, os.WriteFile(two, []byte("2"), 0o600))
	uri := (&url.URL{Scheme: "file", Path: filepath.ToSlash(two)}).String()

	tests := []struct {
		name      string
		text      string
		wantFiles []string
	}{
		{name: "plain paths", text: one + "\n" + two + "\n", wantFiles: []string{one, two}},
		{name: "file uris", text: uri + "\r\n" + one, wantFiles: []string{two, one}},
		{name: "missing file", text: one + "\n" + filepath.Join(dir, "gone.txt")},
		{name: "directory", text: dir},
		{name: "relative path", text: "one.txt"},
		{name: "prose mentioning a path", text: "see " + one},
		{name: "blank", text: "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &systemClipboard{backend: &fakeBackend{text: tt.text}, stat: os.Stat}

			got, err := c.Read(context.Background())
			require.NoError(t, err)

			if tt.wantFiles == nil {
				assert.Equal(t, models.Payload{Type: models.TypeText, Value: tt.text}, got)
				return
			}
			want, err := models.EncodePathList(tt.wantFiles)
			require.NoError(t, err)
			assert.Equal(t, models.Payload{Type: models.TypeFiles, Value: want}, got)
		})
	}
}

func TestSystemClipboard_ReadFileList_StatError(t *testing.T) {
	statErr := errors.New("permission denied")
	c := &systemClipboard{
		backend: &fakeBackend{text: "/srv/report.pdf"},
		stat: func(name string) (os.FileInfo, error) {
			assert.True(t, strings.HasSuffix(name, "report.pdf"))
			return nil, statErr
		},
	}

	got, err := c.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.TypeText, got.Type)
}

func TestSystemClipboard_ExternalChangeAfterWrite(t *testing.T) {
	b := &fakeBackend{}
	c := &systemClipboard{backend: b}

	require.NoError(t, c.Write(context.Background(), models.Payload{Type: models.TypeFiles, Value: `["/tmp/a"]`}))
	b.text = "typed by user"

	got, err := c.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Payload{Type: models.TypeText, Value: "typed by user"}, got)
}

func TestSystemClipboard_Errors(t *testing.T) {
	boom := errors.New("boom")

	c := &systemClipboard{backend: &fakeBackend{readErr: boom}}
	_, err := c.Read(context.Background())
	assert.ErrorIs(t, err, boom)

	c = &systemClipboard{backend: &fakeBackend{writeErr: boom}}
	err = c.Write(context.Background(), models.Payload{Value: "x"})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, c.lastWritten)

	err = c.Write(context.Background(), models.Payload{Type: models.TypeFiles, Value: "not json"})
	assert.Error(t, err)
}

func TestSystemClipboard_CancelledContext(t *testing.T) {
	c := &systemClipboard{backend: &fakeBackend{}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, c.Write(ctx, models.Payload{}), context.Canceled)
}
