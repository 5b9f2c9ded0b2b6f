// Package notify delivers user-facing sync notifications (the tooltips of
// a desktop clipboard manager).
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

//go:generate mockgen -source=notify.go -destination=../mock/notifier_mock.go -package=mock

// Notifier shows a short message to the user. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// logNotifier records notifications in the log and echoes them to out.
type logNotifier struct {
	logger *logger.Logger

	mu  sync.Mutex
	out io.Writer
}

// NewLogNotifier returns a [Notifier] that logs every message at info level
// and, when out is non-nil, prints it on its own line.
func NewLogNotifier(logger *logger.Logger, out io.Writer) Notifier {
	return &logNotifier{logger: logger, out: out}
}

// Notify implements [Notifier].
func (n *logNotifier) Notify(ctx context.Context, message string) {
	ev := n.logger.Info().Str("notification", message)
	if id, ok := utils.GetOperationIDFromContext(ctx); ok {
		ev = ev.Str("operation_id", id)
	}
	ev.Msg("notify")

	if n.out == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.out, message)
}
