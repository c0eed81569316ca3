package pipeline

// Pipeline connects rules to actions.
// A pipeline defines which actions should be executed when specific rules trigger.
type Pipeline struct {
	Name    string              // Pipeline name
	Rules   []string            // Rule IDs, in configuration order
	Actions map[string][]string // Rule ID → Action IDs mapping
}

// NewPipeline creates a new pipeline with the given name.
func NewPipeline(name string) *Pipeline {
	return &Pipeline{
		Name:    name,
		Actions: make(map[string][]string),
	}
}

// FromConfig builds the pipeline for the enabled rules of config.
func FromConfig(name string, config *Config) *Pipeline {
	p := NewPipeline(name)
	for _, rc := range config.Rules {
		if !rc.Enabled {
			continue
		}
		p.AddRule(rc.ID).AddActions(rc.ID, rc.Actions...)
	}
	return p
}

// AddRule adds a rule to this pipeline.
func (p *Pipeline) AddRule(ruleID string) *Pipeline {
	p.Rules = append(p.Rules, ruleID)
	return p
}

// AddActions associates actions with a rule.
func (p *Pipeline) AddActions(ruleID string, actionIDs ...string) *Pipeline {
	if p.Actions == nil {
		p.Actions = make(map[string][]string)
	}
	p.Actions[ruleID] = append(p.Actions[ruleID], actionIDs...)
	return p
}

// GetActions returns the action IDs for a given rule.
func (p *Pipeline) GetActions(ruleID string) []string {
	return p.Actions[ruleID]
}
