package action

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// testAction is a scripted action for testing
type testAction struct {
	id             string
	name           string
	config         ActionConfig
	executeFunc    func(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error
	rollbackFunc   func(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error
	executeCalls   atomic.Int32
	rollbackCalled bool
}

func (a *testAction) ID() string           { return a.id }
func (a *testAction) Name() string         { return a.name }
func (a *testAction) Config() ActionConfig { return a.config }

func (a *testAction) Execute(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	a.executeCalls.Add(1)
	if a.executeFunc != nil {
		return a.executeFunc(ctx, trigger, snap)
	}
	return nil
}

func (a *testAction) Rollback(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
	a.rollbackCalled = true
	if a.rollbackFunc != nil {
		return a.rollbackFunc(ctx, trigger, snap)
	}
	return nil
}

func newTestAction(id string) *testAction {
	return &testAction{id: id, config: ActionConfig{ID: id, Enabled: true}}
}

func hatchTrigger() *rule.Trigger {
	return rule.NewTrigger("hatch", "egg reached level 5",
		rule.Transition{Kind: rule.TransitionHatch, From: "004", To: "004"}, 10)
}

var testSnapshot = companion.Snapshot{SpeciesID: "004", Name: "Charmander", Level: 5}

func TestExecutor_Execute_Success(t *testing.T) {
	registry := NewRegistry()
	a := newTestAction("test_action")
	registry.Register(a)

	executor := NewExecutor(registry)

	result, err := executor.Execute(context.Background(), "test_action", hatchTrigger(), testSnapshot)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("Expected successful result")
	}
	if result.Attempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", result.Attempts)
	}
	if a.executeCalls.Load() != 1 {
		t.Error("Expected action to be executed once")
	}
}

func TestExecutor_Execute_ActionNotFound(t *testing.T) {
	executor := NewExecutor(NewRegistry())

	_, err := executor.Execute(context.Background(), "missing", hatchTrigger(), testSnapshot)
	if !errors.Is(err, ErrActionNotFound) {
		t.Errorf("Expected ErrActionNotFound, got %v", err)
	}
}

func TestExecutor_Execute_ActionError(t *testing.T) {
	registry := NewRegistry()
	a := newTestAction("failing")
	a.executeFunc = func(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
		return errors.New("boom")
	}
	registry.Register(a)

	result, err := NewExecutor(registry).Execute(context.Background(), "failing", hatchTrigger(), testSnapshot)
	if err == nil {
		t.Fatal("Expected error")
	}
	if result == nil || result.Success {
		t.Error("Expected failed result")
	}
}

func TestExecutor_Execute_Retry(t *testing.T) {
	registry := NewRegistry()
	a := newTestAction("flaky")
	a.config.Retry = &RetryConfig{MaxAttempts: 3, Delay: time.Millisecond, Backoff: BackoffConstant}
	a.executeFunc = func(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
		if a.executeCalls.Load() < 3 {
			return errors.New("transient")
		}
		return nil
	}
	registry.Register(a)

	result, err := NewExecutor(registry).Execute(context.Background(), "flaky", hatchTrigger(), testSnapshot)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", result.Attempts)
	}
}

func TestExecutor_Execute_RetryExhausted(t *testing.T) {
	registry := NewRegistry()
	a := newTestAction("broken")
	a.config.Retry = &RetryConfig{MaxAttempts: 2, Delay: time.Millisecond, Backoff: BackoffExponential}
	a.executeFunc = func(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
		return errors.New("still broken")
	}
	registry.Register(a)

	result, err := NewExecutor(registry).Execute(context.Background(), "broken", hatchTrigger(), testSnapshot)
	if !errors.Is(err, ErrMaxRetriesExceeded) {
		t.Errorf("Expected ErrMaxRetriesExceeded, got %v", err)
	}
	if result.Attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", result.Attempts)
	}
}

func TestExecutor_ExecuteMultiple_Success(t *testing.T) {
	registry := NewRegistry()
	first := newTestAction("first")
	second := newTestAction("second")
	registry.Register(first)
	registry.Register(second)

	results, err := NewExecutor(registry).ExecuteMultiple(context.Background(), []string{"first", "second"}, hatchTrigger(), testSnapshot, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if first.executeCalls.Load() != 1 || second.executeCalls.Load() != 1 {
		t.Error("Expected both actions to execute")
	}
}

func TestExecutor_ExecuteMultiple_WithRollback(t *testing.T) {
	registry := NewRegistry()
	first := newTestAction("first")
	failing := newTestAction("failing")
	failing.executeFunc = func(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
		return errors.New("boom")
	}
	registry.Register(first)
	registry.Register(failing)

	results, err := NewExecutor(registry).ExecuteMultiple(context.Background(), []string{"first", "failing"}, hatchTrigger(), testSnapshot, true)
	if err == nil {
		t.Fatal("Expected error")
	}

	if len(results) != 2 || results[1].Success {
		t.Errorf("Expected second result to be a failure, got %+v", results)
	}
	if !first.rollbackCalled {
		t.Error("Expected first action to be rolled back")
	}
	if failing.rollbackCalled {
		t.Error("Failed action should not be rolled back")
	}
}

func TestExecutor_ExecuteMultiple_NoRollback(t *testing.T) {
	registry := NewRegistry()
	first := newTestAction("first")
	registry.Register(first)

	_, err := NewExecutor(registry).ExecuteMultiple(context.Background(), []string{"first", "missing"}, hatchTrigger(), testSnapshot, false)
	if !errors.Is(err, ErrActionNotFound) {
		t.Fatalf("Expected ErrActionNotFound, got %v", err)
	}
	if first.rollbackCalled {
		t.Error("Expected no rollback when disabled")
	}
}

func TestExecutor_ExecuteMultiple_Async(t *testing.T) {
	registry := NewRegistry()
	release := make(chan struct{})

	async := newTestAction("async")
	async.config.Async = true
	async.executeFunc = func(ctx context.Context, trigger *rule.Trigger, snap companion.Snapshot) error {
		<-release
		return errors.New("ignored")
	}
	sync := newTestAction("sync")
	registry.Register(async)
	registry.Register(sync)

	executor := NewExecutor(registry)
	results, err := executor.ExecuteMultiple(context.Background(), []string{"async", "sync"}, hatchTrigger(), testSnapshot, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(results) != 2 || !results[0].Async || !results[0].Success {
		t.Errorf("Expected async result reported as started, got %+v", results[0])
	}
	if sync.executeCalls.Load() != 1 {
		t.Error("Expected sync action to run without waiting for async one")
	}

	close(release)
	executor.Wait()

	if async.executeCalls.Load() != 1 {
		t.Error("Expected async action to have run")
	}
}
