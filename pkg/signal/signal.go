package signal

import "time"

// Signal is a normalized lifecycle event queued for the pipeline manager.
// Producers (the ticker, the step sensor, the tap handler) create signals;
// the single consumer applies them to the lifecycle engine in order.
type Signal interface {
	// Type returns the signal type identifier (e.g., "tick", "step").
	Type() string

	// Timestamp returns when the signal occurred.
	Timestamp() time.Time

	// Metadata returns additional signal-specific data for logging.
	Metadata() map[string]interface{}
}

// BaseSignal carries the fields common to every signal.
type BaseSignal struct {
	signalType string
	timestamp  time.Time
	metadata   map[string]interface{}
}

// NewBaseSignal creates a base signal. A nil metadata map is replaced with an empty one.
func NewBaseSignal(signalType string, timestamp time.Time, metadata map[string]interface{}) BaseSignal {
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return BaseSignal{
		signalType: signalType,
		timestamp:  timestamp,
		metadata:   metadata,
	}
}

// Type implements Signal interface.
func (s BaseSignal) Type() string {
	return s.signalType
}

// Timestamp implements Signal interface.
func (s BaseSignal) Timestamp() time.Time {
	return s.timestamp
}

// Metadata implements Signal interface.
func (s BaseSignal) Metadata() map[string]interface{} {
	return s.metadata
}
