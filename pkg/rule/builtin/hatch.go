package builtin

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

const (
	// HatchRuleID is the rule type for egg hatching
	HatchRuleID = "hatch"

	// DefaultHatchLevel is the level at which an egg of an evolving species hatches
	DefaultHatchLevel = 5

	// DefaultTerminalHatchLevel is the level at which an egg of a terminal species hatches
	DefaultTerminalHatchLevel = 25
)

// HatchRule hatches an egg once the companion reaches the hatch level.
// Eggs of species that never evolve (or are missing from the catalog) take
// longer to hatch.
type HatchRule struct {
	config        rule.RuleConfig
	catalog       rule.Catalog
	hatchLevel    int
	terminalLevel int
}

// NewHatchRule creates a new hatch rule.
func NewHatchRule(config rule.RuleConfig, catalog rule.Catalog) *HatchRule {
	hatchLevel := config.GetInt("hatch_level", DefaultHatchLevel)
	terminalLevel := config.GetInt("terminal_hatch_level", DefaultTerminalHatchLevel)

	logrus.Infof("creating hatch rule with hatch_level=%d, terminal_hatch_level=%d", hatchLevel, terminalLevel)

	return &HatchRule{
		config:        config,
		catalog:       catalog,
		hatchLevel:    hatchLevel,
		terminalLevel: terminalLevel,
	}
}

func (r *HatchRule) ID() string {
	return r.config.ID
}

func (r *HatchRule) Name() string {
	return "Egg Hatch"
}

func (r *HatchRule) Config() rule.RuleConfig {
	return r.config
}

// Threshold returns the hatch level for an egg of speciesID.
func (r *HatchRule) Threshold(speciesID string) int {
	if r.catalog != nil {
		if entry, ok := r.catalog.Lookup(speciesID); ok && entry.Evolves() {
			return r.hatchLevel
		}
	}
	return r.terminalLevel
}

// Evaluate checks whether the egg has reached its hatch level.
func (r *HatchRule) Evaluate(ctx context.Context, st companion.State) (bool, *rule.Trigger, error) {
	if !st.IsEgg {
		return false, nil, nil
	}

	level := st.Level()
	threshold := r.Threshold(st.SpeciesID)

	if level < threshold {
		return false, nil, nil
	}

	transition := rule.Transition{
		Kind: rule.TransitionHatch,
		From: st.SpeciesID,
		To:   st.SpeciesID,
	}
	trigger := rule.NewTrigger(r.ID(), fmt.Sprintf("egg reached level %d", level), transition, r.config.Priority).
		WithMetadata("level", level).
		WithMetadata("threshold", threshold)

	return true, trigger, nil
}
