package rule

import "github.com/AccelByte/extend-step-companion/pkg/species"

// Catalog is the read-only species lookup rules consult.
type Catalog interface {
	Lookup(id string) (species.Species, bool)
}

// RuleDependencies holds the collaborators rules can use.
type RuleDependencies struct {
	Catalog Catalog
}

// NewRuleDependencies creates a dependencies container around catalog.
func NewRuleDependencies(catalog Catalog) *RuleDependencies {
	return &RuleDependencies{Catalog: catalog}
}
