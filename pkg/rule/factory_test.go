package rule_test

import (
	"testing"

	"github.com/AccelByte/extend-step-companion/pkg/rule"
	ruleBuiltin "github.com/AccelByte/extend-step-companion/pkg/rule/builtin"
	"github.com/AccelByte/extend-step-companion/pkg/species"
)

func init() {
	ruleBuiltin.RegisterRules(rule.NewRuleDependencies(species.Builtin()))
}

func TestCreateRule_Hatch(t *testing.T) {
	config := rule.RuleConfig{
		ID:       "hatch_eggs",
		Type:     ruleBuiltin.HatchRuleID,
		Enabled:  true,
		Priority: 10,
		Parameters: map[string]interface{}{
			"hatch_level": 5,
		},
	}

	r, err := rule.CreateRule(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r == nil {
		t.Fatal("Expected non-nil rule")
	}

	if r.ID() != config.ID {
		t.Errorf("Expected rule ID '%s', got '%s'", config.ID, r.ID())
	}
}

func TestCreateRule_Disabled(t *testing.T) {
	config := rule.RuleConfig{
		ID:      "disabled_rule",
		Type:    ruleBuiltin.HatchRuleID,
		Enabled: false,
	}

	r, err := rule.CreateRule(config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r != nil {
		t.Error("Expected nil rule for disabled config")
	}
}

func TestCreateRule_UnknownType(t *testing.T) {
	config := rule.RuleConfig{
		ID:      "unknown_rule",
		Type:    "unknown_type",
		Enabled: true,
	}

	r, err := rule.CreateRule(config)
	if err == nil {
		t.Error("Expected error for unknown rule type")
	}

	if r != nil {
		t.Error("Expected nil rule for unknown type")
	}
}

func TestCreateRules_WithErrors(t *testing.T) {
	configs := []rule.RuleConfig{
		{ID: "valid_rule", Type: ruleBuiltin.HatchRuleID, Enabled: true},
		{ID: "invalid_rule", Type: "unknown_type", Enabled: true},
		{ID: "disabled_rule", Type: ruleBuiltin.LevelEvolutionRuleID, Enabled: false},
	}

	rules, errs := rule.CreateRules(configs)

	if len(errs) != 1 {
		t.Errorf("Expected 1 error, got %d", len(errs))
	}

	if len(rules) != 1 {
		t.Errorf("Expected 1 rule, got %d", len(rules))
	}
}

func TestRegisterRules(t *testing.T) {
	registry := rule.NewRegistry()
	configs := []rule.RuleConfig{
		{ID: "hatch_eggs", Type: ruleBuiltin.HatchRuleID, Enabled: true},
		{ID: "evolve", Type: ruleBuiltin.LevelEvolutionRuleID, Enabled: true},
	}

	if err := rule.RegisterRules(registry, configs); err != nil {
		t.Fatalf("RegisterRules() error = %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 registered rules, got %d", registry.Count())
	}

	bad := []rule.RuleConfig{{ID: "bad", Type: "unknown_type", Enabled: true}}
	if err := rule.RegisterRules(rule.NewRegistry(), bad); err == nil {
		t.Error("Expected error for unknown rule type")
	}
}

func TestRegisteredTypes(t *testing.T) {
	types := rule.RegisteredTypes()

	want := map[string]bool{ruleBuiltin.HatchRuleID: false, ruleBuiltin.LevelEvolutionRuleID: false}
	for _, typ := range types {
		if _, ok := want[typ]; ok {
			want[typ] = true
		}
	}
	for typ, seen := range want {
		if !seen {
			t.Errorf("Expected %s in registered types %v", typ, types)
		}
	}
}
