package rule

import (
	"context"
	"time"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
)

// Transition kinds emitted by rules.
const (
	TransitionHatch  = "hatch"
	TransitionEvolve = "evolve"
)

// Rule inspects the companion state and emits a trigger when a transition is due.
// Rules are registered in a Registry and evaluated by the Engine.
type Rule interface {
	// ID returns unique rule identifier.
	ID() string

	// Name returns human-readable rule name.
	Name() string

	// Evaluate checks whether the state satisfies the rule.
	// Returns true and trigger data if rule matches, false otherwise.
	// Returns error only for unexpected failures, not rule mismatches.
	Evaluate(ctx context.Context, st companion.State) (bool, *Trigger, error)

	// Config returns the rule's configuration.
	Config() RuleConfig
}

// Transition describes the change a trigger asks the lifecycle to apply.
type Transition struct {
	Kind string // TransitionHatch or TransitionEvolve
	From string // species id before the transition
	To   string // species id after the transition
}

// Trigger represents a rule match that should be applied and execute actions.
type Trigger struct {
	RuleID     string                 // ID of the rule that triggered
	Timestamp  time.Time              // When the trigger occurred
	Reason     string                 // Human-readable reason for the trigger
	Transition Transition             // State change to apply
	Metadata   map[string]interface{} // Rule-specific data for actions
	Priority   int                    // Priority for ordering (higher = first)
}

// NewTrigger creates a new trigger with the given parameters.
func NewTrigger(ruleID, reason string, transition Transition, priority int) *Trigger {
	return &Trigger{
		RuleID:     ruleID,
		Timestamp:  time.Now(),
		Reason:     reason,
		Transition: transition,
		Metadata:   make(map[string]interface{}),
		Priority:   priority,
	}
}

// WithMetadata adds metadata to the trigger and returns it for chaining.
func (t *Trigger) WithMetadata(key string, value interface{}) *Trigger {
	t.Metadata[key] = value
	return t
}
