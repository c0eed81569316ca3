package action

import (
	"context"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// Action performs a one-time side effect in response to an applied transition.
// Actions are registered in a Registry and executed by the Executor.
type Action interface {
	// ID returns unique action identifier.
	ID() string

	// Name returns human-readable action name.
	Name() string

	// Execute performs the action. snap is the companion as it looks after
	// the transition was applied.
	Execute(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error

	// Rollback undoes the action (optional, can return ErrRollbackNotSupported).
	// This is called if a subsequent action in a pipeline fails and rollback is enabled.
	Rollback(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error

	// Config returns the action's configuration.
	Config() ActionConfig
}

// ActionResult represents the outcome of an action execution.
type ActionResult struct {
	ActionID string
	Success  bool
	Async    bool
	Attempts int
	Error    error
}

// NewActionResult creates a successful action result.
func NewActionResult(actionID string, attempts int) *ActionResult {
	return &ActionResult{
		ActionID: actionID,
		Success:  true,
		Attempts: attempts,
	}
}

// NewActionError creates a failed action result with an error.
func NewActionError(actionID string, attempts int, err error) *ActionResult {
	return &ActionResult{
		ActionID: actionID,
		Success:  false,
		Attempts: attempts,
		Error:    err,
	}
}
