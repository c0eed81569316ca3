package builtin

import (
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// RegisterRules registers the lifecycle rule types with the factory.
func RegisterRules(deps *rule.RuleDependencies) {
	var catalog rule.Catalog
	if deps != nil {
		catalog = deps.Catalog
	}

	rule.RegisterRuleType(HatchRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewHatchRule(config, catalog), nil
	})

	rule.RegisterRuleType(LevelEvolutionRuleID, func(config rule.RuleConfig) (rule.Rule, error) {
		return NewLevelEvolutionRule(config, catalog), nil
	})
}
