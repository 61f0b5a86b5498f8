package sse

import (
	"bytes"
	"strings"
)

// RefreshEvent asks viewers to reload the whole board
const RefreshEvent = "refresh"

var (
	retryFrame     = []byte("retry: 3000\n\n")
	connectedFrame = Event{Name: "connected", Data: `{"status":"connected"}`}.Encode()
	keepaliveFrame = []byte(": keepalive\n\n")
)

// Event is a single named server-sent event.
type Event struct {
	Name string
	Data string
}

// Encode renders the event in text/event-stream framing. Multi-line data is
// sent as one data field per line; carriage returns are dropped.
func (e Event) Encode() []byte {
	var b bytes.Buffer
	b.WriteString("event: " + e.Name + "\n")
	data := strings.TrimSuffix(strings.ReplaceAll(e.Data, "\r", ""), "\n")
	for line := range strings.SplitSeq(data, "\n") {
		b.WriteString("data: " + line + "\n")
	}
	b.WriteByte('\n')
	return b.Bytes()
}
