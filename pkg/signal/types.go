package signal

import "time"

// Signal type constants
const (
	TypeTick = "tick"
	TypeStep = "step"
	TypeTap  = "tap"
)

// TickSignal is the periodic clock tick driving rollover and evolution checks.
type TickSignal struct {
	BaseSignal
}

// NewTickSignal creates a tick signal at now.
func NewTickSignal(now time.Time) *TickSignal {
	return &TickSignal{BaseSignal: NewBaseSignal(TypeTick, now, nil)}
}

// StepSignal carries a cumulative step counter sample from the sensor.
type StepSignal struct {
	BaseSignal
	Cumulative int
}

// NewStepSignal creates a step signal for a cumulative counter reading.
func NewStepSignal(now time.Time, cumulative int) *StepSignal {
	metadata := map[string]interface{}{
		"cumulative": cumulative,
	}
	return &StepSignal{
		BaseSignal: NewBaseSignal(TypeStep, now, metadata),
		Cumulative: cumulative,
	}
}

// TapSignal is a user tap on the companion, answered with its cry.
type TapSignal struct {
	BaseSignal
}

// NewTapSignal creates a tap signal at now.
func NewTapSignal(now time.Time) *TapSignal {
	return &TapSignal{BaseSignal: NewBaseSignal(TypeTap, now, nil)}
}
