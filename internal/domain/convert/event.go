package convert

// EventKind discriminates engine lifecycle events.
type EventKind int

const (
	EventStart EventKind = iota
	EventProgress
	EventDone
	EventFailed
)

// Event is one entry in the engine's event stream: a start event,
// zero or more progress events, then exactly one terminal Done or
// Failed event, after which the stream closes.
type Event struct {
	Kind    EventKind
	Percent float64 // raw engine percent, EventProgress only
	Detail  string  // failure detail, EventFailed only
}

// TrimWindow restricts conversion to a sub-range of the input timeline.
type TrimWindow struct {
	Seek     float64 // seconds from the start of the input
	Duration float64 // seconds to transcode
}

// EngineSpec carries everything the engine needs for one invocation.
type EngineSpec struct {
	InputURL   string
	OutputPath string
	CRF        int
	Trim       *TrimWindow
}
