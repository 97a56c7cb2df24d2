package llm

import (
	"bufio"
	"io"
	"strings"
)

// sseEvent is a single server-sent event from the completion stream.
type sseEvent struct {
	Event string
	Data  string
}

// sseReader reads server-sent events from a response body.
// The completion API terminates its stream with a "data: [DONE]" event.
type sseReader struct {
	scanner *bufio.Scanner
	body    io.ReadCloser
}

func newSSEReader(body io.ReadCloser) *sseReader {
	return &sseReader{
		scanner: bufio.NewScanner(body),
		body:    body,
	}
}

// next returns the next event, or io.EOF when the stream ends.
func (r *sseReader) next() (*sseEvent, error) {
	var ev sseEvent
	var hasData bool

	for r.scanner.Scan() {
		line := r.scanner.Text()

		// A blank line terminates the event.
		if line == "" {
			if hasData {
				return &ev, nil
			}
			continue
		}

		// Lines starting with ":" are comments (keep-alives).
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value := splitSSELine(line)
		switch field {
		case "data":
			if hasData {
				ev.Data += "\n" + value
			} else {
				ev.Data = value
				hasData = true
			}
		case "event":
			ev.Event = value
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if hasData {
		return &ev, nil
	}
	return nil, io.EOF
}

func (r *sseReader) close() error {
	return r.body.Close()
}

// splitSSELine splits "field: value", dropping the single space the SSE
// format allows after the colon.
func splitSSELine(line string) (field, value string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return line, ""
	}
	field = line[:idx]
	value = line[idx+1:]
	if value != "" && value[0] == ' ' {
		value = value[1:]
	}
	return field, value
}
