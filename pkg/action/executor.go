package action

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// asyncTimeout bounds fire-and-forget actions so shutdown never hangs on them.
const asyncTimeout = 5 * time.Second

// Executor executes actions in response to rule triggers.
type Executor struct {
	registry *Registry
	inflight sync.WaitGroup
}

// NewExecutor creates a new action executor.
func NewExecutor(registry *Registry) *Executor {
	return &Executor{
		registry: registry,
	}
}

// Execute runs a single action in response to a trigger.
func (e *Executor) Execute(ctx context.Context, actionID string, trigger *rule.Trigger, snap companion.Snapshot) (*ActionResult, error) {
	action := e.registry.Get(actionID)
	if action == nil {
		return nil, fmt.Errorf("%w: %s", ErrActionNotFound, actionID)
	}

	attempts, err := e.run(ctx, action, trigger, snap)
	if err != nil {
		return NewActionError(actionID, attempts, err), err
	}
	return NewActionResult(actionID, attempts), nil
}

// ExecuteMultiple executes actions in sequence. Async actions are started in
// the background and reported immediately. If rollbackOnError is true,
// previously executed synchronous actions are rolled back when a later
// action fails.
func (e *Executor) ExecuteMultiple(ctx context.Context, actionIDs []string, trigger *rule.Trigger, snap companion.Snapshot, rollbackOnError bool) ([]*ActionResult, error) {
	var results []*ActionResult
	var executed []Action

	for _, actionID := range actionIDs {
		action := e.registry.Get(actionID)
		if action == nil {
			err := fmt.Errorf("%w: %s", ErrActionNotFound, actionID)
			logrus.Errorf("%v", err)

			if rollbackOnError {
				e.rollbackActions(ctx, executed, trigger, snap)
			}
			return results, err
		}

		if action.Config().Async {
			e.runAsync(action, trigger, snap)
			results = append(results, &ActionResult{ActionID: actionID, Success: true, Async: true})
			continue
		}

		attempts, err := e.run(ctx, action, trigger, snap)
		if err != nil {
			results = append(results, NewActionError(actionID, attempts, err))

			if rollbackOnError {
				e.rollbackActions(ctx, executed, trigger, snap)
			}
			return results, err
		}

		executed = append(executed, action)
		results = append(results, NewActionResult(actionID, attempts))
	}

	return results, nil
}

// Wait blocks until every async action started by this executor has returned.
func (e *Executor) Wait() {
	e.inflight.Wait()
}

func (e *Executor) runAsync(action Action, trigger *rule.Trigger, snap companion.Snapshot) {
	e.inflight.Add(1)
	go func() {
		defer e.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		if _, err := e.run(ctx, action, trigger, snap); err != nil {
			logrus.Warnf("async action %s failed: %v", action.ID(), err)
		}
	}()
}

// run executes action with the retry policy from its config and returns the
// number of attempts made.
func (e *Executor) run(ctx context.Context, action Action, trigger *rule.Trigger, snap companion.Snapshot) (int, error) {
	logrus.Debugf("executing action %s for rule %s (%s %s -> %s)",
		action.ID(), trigger.RuleID, trigger.Transition.Kind, trigger.Transition.From, trigger.Transition.To)

	attempts := 0
	operation := func() error {
		attempts++
		return action.Execute(ctx, trigger, snap)
	}

	retry := action.Config().Retry
	if retry == nil || retry.MaxAttempts <= 1 {
		if err := operation(); err != nil {
			logrus.Errorf("action %s failed: %v", action.ID(), err)
			return attempts, err
		}
		return attempts, nil
	}

	err := backoff.Retry(operation, backoff.WithContext(retryPolicy(retry), ctx))
	if err != nil {
		logrus.Errorf("action %s failed after %d attempts: %v", action.ID(), attempts, err)
		return attempts, errors.Join(ErrMaxRetriesExceeded, err)
	}
	return attempts, nil
}

func retryPolicy(cfg *RetryConfig) backoff.BackOff {
	var policy backoff.BackOff
	switch cfg.Backoff {
	case BackoffExponential:
		exp := backoff.NewExponentialBackOff()
		if cfg.Delay > 0 {
			exp.InitialInterval = cfg.Delay
		}
		policy = exp
	default:
		policy = backoff.NewConstantBackOff(cfg.Delay)
	}
	return backoff.WithMaxRetries(policy, uint64(cfg.MaxAttempts-1))
}

// rollbackActions rolls back actions in reverse order.
func (e *Executor) rollbackActions(ctx context.Context, actions []Action, trigger *rule.Trigger, snap companion.Snapshot) {
	if len(actions) == 0 {
		return
	}
	logrus.Warnf("rolling back %d actions", len(actions))

	for i := len(actions) - 1; i >= 0; i-- {
		action := actions[i]

		err := action.Rollback(ctx, trigger, snap)
		switch {
		case err == nil:
			logrus.Infof("action %s rolled back", action.ID())
		case errors.Is(err, ErrRollbackNotSupported):
			logrus.Warnf("action %s does not support rollback", action.ID())
		default:
			logrus.Errorf("failed to rollback action %s: %v", action.ID(), err)
		}
	}
}

// GetRegistry returns the action registry used by this executor.
func (e *Executor) GetRegistry() *Registry {
	return e.registry
}
