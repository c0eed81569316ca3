package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-step-companion/pkg/action"
	"github.com/AccelByte/extend-step-companion/pkg/rule"
)

// Config represents the complete pipeline configuration.
type Config struct {
	Rules   []RuleConfig   `yaml:"rules"`
	Actions []ActionConfig `yaml:"actions"`
}

// RuleConfig represents a rule configuration entry.
type RuleConfig struct {
	ID         string                 `yaml:"id"`
	Name       string                 `yaml:"name,omitempty"`
	Type       string                 `yaml:"type"`
	Enabled    bool                   `yaml:"enabled"`
	Priority   int                    `yaml:"priority,omitempty"`
	Actions    []string               `yaml:"actions,omitempty"` // Action IDs to execute when rule triggers
	Parameters map[string]interface{} `yaml:"parameters,omitempty"`
}

// ActionConfig represents an action configuration entry.
type ActionConfig struct {
	ID         string                 `yaml:"id"`
	Name       string                 `yaml:"name,omitempty"`
	Type       string                 `yaml:"type"`
	Enabled    bool                   `yaml:"enabled"`
	Async      bool                   `yaml:"async,omitempty"`
	Retry      *action.RetryConfig    `yaml:"retry,omitempty"`
	Parameters map[string]interface{} `yaml:"parameters,omitempty"`
}

// DefaultConfig is the pipeline used when no configuration file exists:
// eggs hatch at level 5 (25 for species that never evolve), companions
// evolve at their catalog level, and every transition plays the evolution
// sound and is counted.
func DefaultConfig() *Config {
	return &Config{
		Rules: []RuleConfig{
			{
				ID:       "hatch",
				Name:     "Egg Hatch",
				Type:     "hatch",
				Enabled:  true,
				Priority: 20,
				Actions:  []string{"evolution_sound", "record_transition"},
				Parameters: map[string]interface{}{
					"hatch_level":          5,
					"terminal_hatch_level": 25,
				},
			},
			{
				ID:       "level_evolution",
				Name:     "Level Evolution",
				Type:     "level_evolution",
				Enabled:  true,
				Priority: 10,
				Actions:  []string{"evolution_sound", "record_transition"},
			},
		},
		Actions: []ActionConfig{
			{
				ID:      "evolution_sound",
				Type:    "play_cue",
				Enabled: true,
				Async:   true,
				Parameters: map[string]interface{}{
					"cue": "evolution",
				},
			},
			{
				ID:      "record_transition",
				Type:    "record_transition",
				Enabled: true,
			},
		},
	}
}

// LoadConfig loads pipeline configuration from a YAML file.
// Supports environment variable expansion in the form ${VAR_NAME} or ${VAR_NAME:default}.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// LoadConfigOrDefault loads path, falling back to DefaultConfig when the
// file does not exist. Any other error is returned.
func LoadConfigOrDefault(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("pipeline config %s not found, using built-in defaults", path)
		return DefaultConfig(), nil
	}
	return config, err
}

// ParseConfig parses and validates YAML pipeline configuration.
func ParseConfig(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration for common errors.
func (c *Config) Validate() error {
	ruleIDs := make(map[string]bool)
	for _, rule := range c.Rules {
		if rule.ID == "" {
			return fmt.Errorf("rule with empty ID found")
		}
		if ruleIDs[rule.ID] {
			return fmt.Errorf("duplicate rule ID: %s", rule.ID)
		}
		ruleIDs[rule.ID] = true

		if rule.Type == "" {
			return fmt.Errorf("rule %s has empty type", rule.ID)
		}
	}

	actionIDs := make(map[string]bool)
	for _, action := range c.Actions {
		if action.ID == "" {
			return fmt.Errorf("action with empty ID found")
		}
		if actionIDs[action.ID] {
			return fmt.Errorf("duplicate action ID: %s", action.ID)
		}
		actionIDs[action.ID] = true

		if action.Type == "" {
			return fmt.Errorf("action %s has empty type", action.ID)
		}
		if action.Retry != nil && action.Retry.MaxAttempts < 1 {
			return fmt.Errorf("action %s: retry.max_attempts must be at least 1", action.ID)
		}
	}

	for _, rule := range c.Rules {
		for _, actionID := range rule.Actions {
			if !actionIDs[actionID] {
				return fmt.Errorf("rule %s references unknown action: %s", rule.ID, actionID)
			}
		}
	}

	return nil
}

// RuleConfigs converts the rule entries for the rule factory.
func (c *Config) RuleConfigs() []rule.RuleConfig {
	configs := make([]rule.RuleConfig, 0, len(c.Rules))
	for _, rc := range c.Rules {
		configs = append(configs, rule.RuleConfig{
			ID:         rc.ID,
			Name:       rc.Name,
			Type:       rc.Type,
			Enabled:    rc.Enabled,
			Priority:   rc.Priority,
			Parameters: rc.Parameters,
		})
	}
	return configs
}

// ActionConfigs converts the action entries for the action factory.
func (c *Config) ActionConfigs() []action.ActionConfig {
	configs := make([]action.ActionConfig, 0, len(c.Actions))
	for _, ac := range c.Actions {
		configs = append(configs, action.ActionConfig{
			ID:         ac.ID,
			Name:       ac.Name,
			Type:       ac.Type,
			Enabled:    ac.Enabled,
			Async:      ac.Async,
			Retry:      ac.Retry,
			Parameters: ac.Parameters,
		})
	}
	return configs
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
