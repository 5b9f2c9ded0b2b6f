package utils

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// SSEEvent is one Server-Sent Event read from a stream.
type SSEEvent struct {
	// Name is the value of the "event:" field. Empty for unnamed events.
	Name string
	// Data holds the "data:" lines of the event joined with "\n".
	Data string
}

// SSEScanner reads Server-Sent Events from an io.Reader.
//
// Events end at a blank line. Comment lines (":...") and the id/retry
// fields are skipped. A final event that is not followed by a blank line
// is still delivered when the stream ends.
//
// Example usage:
//
//	sc := utils.NewSSEScanner(body)
//	for sc.Next() {
//	    ev := sc.Event()
//	}
//	if err := sc.Err(); err != nil {
//	    // stream broke
//	}
type SSEScanner struct {
	r     *bufio.Reader
	event SSEEvent
	err   error
	done  bool
}

// NewSSEScanner wraps r in a buffered SSE reader.
func NewSSEScanner(r io.Reader) *SSEScanner {
	return &SSEScanner{r: bufio.NewReaderSize(r, 64*1024)}
}

// Next reads the next event. It returns false at the end of the stream or
// on a read error; Err tells them apart.
func (s *SSEScanner) Next() bool {
	if s.done {
		return false
	}
	s.event = SSEEvent{}

	var (
		name  string
		data  []string
		dirty bool
	)
	emit := func() bool {
		s.event = SSEEvent{Name: name, Data: strings.Join(data, "\n")}
		return true
	}

	for {
		line, err := s.r.ReadString('\n')
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = err
				return false
			}
			if line == "" {
				if dirty {
					return emit()
				}
				return false
			}
			// Unterminated last line; process it, then flush below.
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if dirty {
				return emit()
			}
			name = ""
			continue
		}

		if !strings.HasPrefix(line, ":") {
			field, value, _ := strings.Cut(line, ":")
			value = strings.TrimPrefix(value, " ")

			switch field {
			case "data":
				data = append(data, value)
				dirty = true
			case "event":
				name = value
			}
		}

		if s.done {
			if dirty {
				return emit()
			}
			return false
		}
	}
}

// Event returns the event read by the last successful Next.
func (s *SSEScanner) Event() SSEEvent {
	return s.event
}

// Err returns the read error that stopped the scanner, or nil on a clean
// end of stream.
func (s *SSEScanner) Err() error {
	return s.err
}
