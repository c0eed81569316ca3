// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/pipeline"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
	ruleBuiltin "github.com/AccelByte/extend-step-companion/pkg/rule/builtin"
	"github.com/AccelByte/extend-step-companion/pkg/species"
)

// InitRuleEngine creates and initializes a rule engine with rules from pipeline config.
//
// ============================================================
// DEVELOPER: Register custom rule types here.
// ============================================================
// Rules look at the companion state on every tick and decide
// whether a transition is due.
//
// Steps to add a new rule:
// 1. Create your rule in pkg/rule/builtin/
// 2. Implement the Rule interface
// 3. Register the rule type in pkg/rule/builtin/init.go
// 4. Add rule configuration to config/pipeline.yaml
//
// The builtin rules:
// - hatch → eggs hatch at level 5 (25 for species that never evolve)
// - level_evolution → evolves at the catalog's evolution level
// ============================================================
func InitRuleEngine(pipelineConfig *pipeline.Config, catalog *species.Catalog) (*rule.Engine, *rule.Registry, error) {
	ruleBuiltin.RegisterRules(rule.NewRuleDependencies(catalog))

	if err := pipeline.ValidateTypes(&pipeline.Config{Rules: pipelineConfig.Rules}); err != nil {
		return nil, nil, err
	}

	registry := rule.NewRegistry()
	if err := rule.RegisterRules(registry, pipelineConfig.RuleConfigs()); err != nil {
		return nil, nil, fmt.Errorf("failed to register rules: %w", err)
	}

	engine := rule.NewEngine(registry)
	logrus.Infof("initialized rule engine with %d rules", registry.Count())

	return engine, registry, nil
}
