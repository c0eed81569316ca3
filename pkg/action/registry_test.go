package action

import (
	"testing"
)

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()
	a := newTestAction("test_action")

	if err := registry.Register(a); err != nil {
		t.Fatalf("Failed to register action: %v", err)
	}

	if registry.Count() != 1 {
		t.Errorf("Expected count 1, got %d", registry.Count())
	}

	if err := registry.Register(a); err == nil {
		t.Error("Expected error when registering duplicate action")
	}
}

func TestRegistry_GetAndUnregister(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newTestAction("test_action"))

	if registry.Get("test_action") == nil {
		t.Fatal("Expected to retrieve action")
	}
	if registry.Get("missing") != nil {
		t.Error("Expected nil for missing action")
	}

	if err := registry.Unregister("test_action"); err != nil {
		t.Fatalf("Failed to unregister: %v", err)
	}
	if err := registry.Unregister("test_action"); err == nil {
		t.Error("Expected error when unregistering missing action")
	}
}

func TestRegistry_GetAll(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newTestAction("b"))
	registry.Register(newTestAction("a"))
	registry.Register(newTestAction("c"))

	all := registry.GetAll()
	if len(all) != 3 {
		t.Fatalf("Expected 3 actions, got %d", len(all))
	}
	for i, want := range []string{"a", "b", "c"} {
		if all[i].ID() != want {
			t.Errorf("Expected action %d to be %s, got %s", i, want, all[i].ID())
		}
	}
}

func TestActionConfig_GetParameterHelpers(t *testing.T) {
	config := ActionConfig{
		Parameters: map[string]interface{}{
			"cue":  "cry",
			"loud": true,
		},
	}

	if val := config.GetParameterString("cue", ""); val != "cry" {
		t.Errorf("Expected 'cry', got '%s'", val)
	}
	if val := config.GetParameterString("missing", "evolution"); val != "evolution" {
		t.Errorf("Expected default, got '%s'", val)
	}
	if val := config.GetParameterBool("loud", false); !val {
		t.Error("Expected true")
	}
	if val := config.GetParameterBool("cue", false); val {
		t.Error("Expected default for wrong type")
	}
}
