package builtin

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// LevelEvolutionRuleID is the rule type for level-based evolution
const LevelEvolutionRuleID = "level_evolution"

// LevelEvolutionRule evolves a hatched companion into its catalog target
// once it reaches the species' evolution level.
type LevelEvolutionRule struct {
	config  rule.RuleConfig
	catalog rule.Catalog
}

// NewLevelEvolutionRule creates a new level evolution rule.
func NewLevelEvolutionRule(config rule.RuleConfig, catalog rule.Catalog) *LevelEvolutionRule {
	return &LevelEvolutionRule{
		config:  config,
		catalog: catalog,
	}
}

func (r *LevelEvolutionRule) ID() string {
	return r.config.ID
}

func (r *LevelEvolutionRule) Name() string {
	return "Level Evolution"
}

func (r *LevelEvolutionRule) Config() rule.RuleConfig {
	return r.config
}

// Evaluate checks whether the companion has reached its evolution level.
// Species absent from the catalog, terminal species and eggs never match.
func (r *LevelEvolutionRule) Evaluate(ctx context.Context, st companion.State) (bool, *rule.Trigger, error) {
	if st.IsEgg || r.catalog == nil {
		return false, nil, nil
	}

	entry, ok := r.catalog.Lookup(st.SpeciesID)
	if !ok {
		logrus.Debugf("species %s not in catalog, not evolving", st.SpeciesID)
		return false, nil, nil
	}
	if !entry.Evolves() || entry.EvolvesTo == "" {
		return false, nil, nil
	}

	level := st.Level()
	if level < entry.EvolutionLevel {
		return false, nil, nil
	}

	transition := rule.Transition{
		Kind: rule.TransitionEvolve,
		From: st.SpeciesID,
		To:   entry.EvolvesTo,
	}
	reason := fmt.Sprintf("%s reached level %d", entry.Name, level)
	trigger := rule.NewTrigger(r.ID(), reason, transition, r.config.Priority).
		WithMetadata("level", level).
		WithMetadata("threshold", entry.EvolutionLevel)

	return true, trigger, nil
}
