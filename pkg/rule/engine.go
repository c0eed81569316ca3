package rule

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
)

// Engine evaluates the companion state against registered rules and returns triggers.
type Engine struct {
	registry *Registry
}

// NewEngine creates a new rule evaluation engine.
func NewEngine(registry *Registry) *Engine {
	return &Engine{
		registry: registry,
	}
}

// Evaluate runs every enabled rule against st.
// Returns the triggers of matching rules, highest priority first.
func (e *Engine) Evaluate(ctx context.Context, st companion.State) ([]*Trigger, error) {
	rules := e.registry.GetEnabled()
	if len(rules) == 0 {
		logrus.Debugf("no rules registered")
		return nil, nil
	}

	var triggers []*Trigger

	for _, rule := range rules {
		matched, trigger, err := rule.Evaluate(ctx, st)
		if err != nil {
			logrus.Errorf("rule %s evaluation failed: %v", rule.ID(), err)
			// Continue evaluating other rules even if one fails
			continue
		}

		if matched && trigger != nil {
			logrus.Debugf("rule %s matched species %s: %s", rule.ID(), st.SpeciesID, trigger.Reason)
			triggers = append(triggers, trigger)
		}
	}

	if len(triggers) > 1 {
		sort.SliceStable(triggers, func(i, j int) bool {
			return triggers[i].Priority > triggers[j].Priority
		})
	}

	return triggers, nil
}

// GetRegistry returns the rule registry used by this engine.
func (e *Engine) GetRegistry() *Registry {
	return e.registry
}
