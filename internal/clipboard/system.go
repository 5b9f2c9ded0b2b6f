package clipboard

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-clip-sync/models"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("system clipboard is not supported")

// textBackend is the text-only clipboard access provided by atotto/clipboard.
type textBackend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type atottoBackend struct{}

func (atottoBackend) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

func (atottoBackend) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// systemClipboard stores every payload as text. Non-text payloads are
// rendered (a file list becomes newline separated paths); the last written
// payload is remembered so reading its rendering back yields the original
// payload and not a new text capture.
//
// Text made only of existing absolute file paths or file:// URIs, one per
// line, is read as a [models.TypeFiles] payload.
type systemClipboard struct {
	backend textBackend
	stat    func(name string) (os.FileInfo, error)

	mu          sync.Mutex
	lastWritten *models.Payload
	lastText    string
}

// NewSystemClipboard returns a [Clipboard] backed by the OS clipboard.
func NewSystemClipboard() Clipboard {
	return &systemClipboard{backend: atottoBackend{}, stat: os.Stat}
}

// Read implements [Clipboard].
func (c *systemClipboard) Read(ctx context.Context) (models.Payload, error) {
	if err := ctx.Err(); err != nil {
		return models.Payload{}, err
	}

	text, err := c.backend.ReadAll()
	if err != nil {
		return models.Payload{}, fmt.Errorf("read clipboard: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastWritten != nil && text == c.lastText {
		return *c.lastWritten, nil
	}

	if paths, ok := c.fileList(text); ok {
		value, err := models.EncodePathList(paths)
		if err != nil {
			return models.Payload{}, fmt.Errorf("read clipboard: %w", err)
		}
		return models.Payload{Type: models.TypeFiles, Value: value}, nil
	}

	return models.Payload{Type: models.TypeText, Value: text}, nil
}

// fileList returns the paths listed in text when every non-blank line names
// an existing regular file.
func (c *systemClipboard) fileList(text string) ([]string, bool) {
	stat := c.stat
	if stat == nil {
		stat = os.Stat
	}

	var paths []string
	for _, line := range strings.Split(text, "\n") {
		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}
		if strings.HasPrefix(path, "file://") {
			u, err := url.Parse(path)
			if err != nil {
				return nil, false
			}
			path = u.Path
		}
		if !filepath.IsAbs(path) {
			return nil, false
		}
		info, err := stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil, false
		}
		paths = append(paths, path)
	}

	return paths, len(paths) > 0
}

// Write implements [Clipboard].
func (c *systemClipboard) Write(ctx context.Context, p models.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := render(p)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err = c.backend.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	c.lastWritten = &p
	c.lastText = text

	return nil
}

func render(p models.Payload) (string, error) {
	switch p.Type.Normalize() {
	case models.TypeFiles:
		paths, err := models.DecodePathList(p.Value)
		if err != nil {
			return "", fmt.Errorf("render clipboard: %w", err)
		}
		return strings.Join(paths, "\n"), nil
	default:
		return p.Value, nil
	}
}
