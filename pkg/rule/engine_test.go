package rule

import (
	"context"
	"testing"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
)

// testRule is a rule with scripted outcomes for testing
type testRule struct {
	id          string
	name        string
	config      RuleConfig
	shouldMatch bool
	shouldError bool
}

func (r *testRule) ID() string         { return r.id }
func (r *testRule) Name() string       { return r.name }
func (r *testRule) Config() RuleConfig { return r.config }

func (r *testRule) Evaluate(ctx context.Context, st companion.State) (bool, *Trigger, error) {
	if r.shouldError {
		return false, nil, &testError{msg: "test error"}
	}

	if !r.shouldMatch {
		return false, nil, nil
	}

	transition := Transition{Kind: TransitionEvolve, From: st.SpeciesID, To: st.SpeciesID}
	trigger := NewTrigger(r.id, "test trigger", transition, r.config.Priority)
	trigger.Metadata["test"] = true

	return true, trigger, nil
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

var testState = companion.State{SpeciesID: "001", Experience: 100}

func TestNewEngine(t *testing.T) {
	registry := NewRegistry()
	engine := NewEngine(registry)

	if engine == nil {
		t.Fatal("Expected non-nil engine")
	}

	if engine.GetRegistry() != registry {
		t.Error("Expected engine to use provided registry")
	}
}

func TestEngine_Evaluate_NoRules(t *testing.T) {
	engine := NewEngine(NewRegistry())

	triggers, err := engine.Evaluate(context.Background(), testState)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(triggers) != 0 {
		t.Errorf("Expected 0 triggers, got %d", len(triggers))
	}
}

func TestEngine_Evaluate_SingleMatchingRule(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&testRule{
		id:          "test_rule",
		name:        "Test Rule",
		config:      RuleConfig{ID: "test_rule", Enabled: true, Priority: 10},
		shouldMatch: true,
	})

	engine := NewEngine(registry)

	triggers, err := engine.Evaluate(context.Background(), testState)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(triggers) != 1 {
		t.Fatalf("Expected 1 trigger, got %d", len(triggers))
	}

	if triggers[0].RuleID != "test_rule" {
		t.Errorf("Expected rule ID 'test_rule', got '%s'", triggers[0].RuleID)
	}

	if triggers[0].Transition.From != "001" {
		t.Errorf("Expected transition from '001', got '%s'", triggers[0].Transition.From)
	}
}

func TestEngine_Evaluate_SortsByPriority(t *testing.T) {
	registry := NewRegistry()

	for _, r := range []*testRule{
		{id: "rule1", config: RuleConfig{ID: "rule1", Enabled: true, Priority: 10}, shouldMatch: true},
		{id: "rule2", config: RuleConfig{ID: "rule2", Enabled: true, Priority: 20}, shouldMatch: true},
		{id: "rule3", config: RuleConfig{ID: "rule3", Enabled: true, Priority: 5}, shouldMatch: true},
	} {
		registry.Register(r)
	}

	triggers, err := NewEngine(registry).Evaluate(context.Background(), testState)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(triggers) != 3 {
		t.Fatalf("Expected 3 triggers, got %d", len(triggers))
	}

	want := []int{20, 10, 5}
	for i, p := range want {
		if triggers[i].Priority != p {
			t.Errorf("Expected trigger %d priority %d, got %d", i, p, triggers[i].Priority)
		}
	}
}

func TestEngine_Evaluate_SkipsDisabled(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&testRule{
		id:          "disabled",
		config:      RuleConfig{ID: "disabled", Enabled: false},
		shouldMatch: true,
	})

	triggers, _ := NewEngine(registry).Evaluate(context.Background(), testState)
	if len(triggers) != 0 {
		t.Errorf("Expected disabled rule to be skipped, got %d triggers", len(triggers))
	}
}

func TestEngine_Evaluate_MixedResults(t *testing.T) {
	registry := NewRegistry()

	registry.Register(&testRule{
		id:          "matching_rule",
		config:      RuleConfig{ID: "matching_rule", Enabled: true, Priority: 10},
		shouldMatch: true,
	})
	registry.Register(&testRule{
		id:     "non_matching_rule",
		config: RuleConfig{ID: "non_matching_rule", Enabled: true, Priority: 5},
	})
	registry.Register(&testRule{
		id:          "error_rule",
		config:      RuleConfig{ID: "error_rule", Enabled: true, Priority: 15},
		shouldError: true,
	})

	triggers, err := NewEngine(registry).Evaluate(context.Background(), testState)
	// Rule errors are logged, not returned
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(triggers) != 1 {
		t.Fatalf("Expected 1 trigger, got %d", len(triggers))
	}

	if triggers[0].RuleID != "matching_rule" {
		t.Errorf("Expected matching_rule to trigger, got '%s'", triggers[0].RuleID)
	}
}
