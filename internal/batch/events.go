// Package batch validates directories of JSON documents against one
// specification document, in parallel, with an optional persistent
// result cache.
package batch

// Status tracks one document through a batch run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusChecking
	StatusOK
	StatusViolation
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusChecking:
		return "checking"
	case StatusOK:
		return "ok"
	case StatusViolation:
		return "violation"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Event reports a document status change to a progress sink.
type Event struct {
	Path   string
	Status Status
}

// Sink receives progress events. Post must be safe for concurrent use.
type Sink interface {
	Post(Event)
}

// ChannelSink forwards events to a channel, dropping them when the
// receiver falls behind so checking never blocks on the UI.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Post(ev Event) {
	select {
	case s.Ch <- ev:
	default:
	}
}

type nopSink struct{}

func (nopSink) Post(Event) {}
