package pipeline

import (
	"fmt"
	"strings"

	"github.com/AccelByte/extend-step-companion/pkg/action"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// ValidateTypes checks that every enabled rule and action in config names a
// registered factory type. Run it before creating instances so a typo is
// reported with the list of known types.
func ValidateTypes(config *Config) error {
	var errors []string

	for _, rc := range config.Rules {
		if rc.Enabled && !rule.IsRegisteredType(rc.Type) {
			errors = append(errors, fmt.Sprintf("rule '%s' has unknown type '%s' (known: %s)",
				rc.ID, rc.Type, strings.Join(rule.RegisteredTypes(), ", ")))
		}
	}

	for _, ac := range config.Actions {
		if ac.Enabled && !action.IsRegisteredType(ac.Type) {
			errors = append(errors, fmt.Sprintf("action '%s' has unknown type '%s' (known: %s)",
				ac.ID, ac.Type, strings.Join(action.RegisteredTypes(), ", ")))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("pipeline type validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}

// ValidateWiring validates that the pipeline is correctly wired.
// It checks that:
// - All enabled rules in config have registered instances
// - All enabled actions in config have registered instances
// - Enabled rules only reference enabled actions
func ValidateWiring(ruleRegistry *rule.Registry, actionRegistry *action.Registry, config *Config) error {
	var errors []string

	for _, rc := range config.Rules {
		if !rc.Enabled {
			continue
		}

		if ruleRegistry.Get(rc.ID) == nil {
			errors = append(errors, fmt.Sprintf("rule '%s' (type=%s) is enabled in config but not registered", rc.ID, rc.Type))
		}

		for _, actionID := range rc.Actions {
			if actionRegistry.Get(actionID) == nil {
				errors = append(errors, fmt.Sprintf("rule '%s' references action '%s' which is disabled or not registered", rc.ID, actionID))
			}
		}
	}

	for _, ac := range config.Actions {
		if !ac.Enabled {
			continue
		}

		if actionRegistry.Get(ac.ID) == nil {
			errors = append(errors, fmt.Sprintf("action '%s' (type=%s) is enabled in config but not registered", ac.ID, ac.Type))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("pipeline wiring validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
