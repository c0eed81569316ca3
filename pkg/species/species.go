package species

import (
	"fmt"
	"sort"
	"strconv"
)

const (
	// NoEvolution marks a species that never evolves by leveling.
	NoEvolution = -1

	// PlaceholderID is the identity shown when a species cannot be resolved.
	PlaceholderID = "201"

	// PlaceholderName is the display name paired with PlaceholderID.
	PlaceholderName = "Unown"
)

// Species is a single catalog entry.
type Species struct {
	ID             string `yaml:"id" json:"id"`
	Name           string `yaml:"name" json:"name"`
	EvolvesTo      string `yaml:"evolves_to,omitempty" json:"evolves_to,omitempty"`
	EvolutionLevel int    `yaml:"evolution_level" json:"evolution_level"`
	HasEgg         bool   `yaml:"egg" json:"egg"`
}

// Evolves reports whether the species has a level-driven evolution.
func (s Species) Evolves() bool {
	return s.EvolutionLevel != NoEvolution && s.EvolvesTo != ""
}

// Rand is the randomness capability used to draw species and variants.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Catalog is an immutable lookup table of species keyed by their
// three-digit identifier. It is safe for concurrent reads.
type Catalog struct {
	entries map[string]Species
	ids     []string
}

// NewCatalog builds a catalog from the given entries. Later duplicates
// replace earlier ones.
func NewCatalog(entries []Species) *Catalog {
	c := &Catalog{entries: make(map[string]Species, len(entries))}
	for _, e := range entries {
		c.entries[e.ID] = e
	}
	c.ids = make([]string, 0, len(c.entries))
	for id := range c.entries {
		c.ids = append(c.ids, id)
	}
	sort.Strings(c.ids)
	return c
}

// Lookup returns the entry for id, or false if the catalog does not know it.
func (c *Catalog) Lookup(id string) (Species, bool) {
	if c == nil {
		return Species{}, false
	}
	s, ok := c.entries[id]
	return s, ok
}

// Name returns the display name for id, falling back to the placeholder.
func (c *Catalog) Name(id string) string {
	if s, ok := c.Lookup(id); ok && s.Name != "" {
		return s.Name
	}
	return PlaceholderName
}

// HasEggForm reports whether id can appear as an egg.
func (c *Catalog) HasEggForm(id string) bool {
	s, ok := c.Lookup(id)
	return ok && s.HasEgg
}

// RandomID draws a species id uniformly from the catalog.
func (c *Catalog) RandomID(rng Rand) string {
	if c == nil || len(c.ids) == 0 {
		return PlaceholderID
	}
	return c.ids[rng.IntN(len(c.ids))]
}

// IDs returns the sorted species ids.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// FormatID renders a numeric species id in catalog form ("7" -> "007").
func FormatID(n int) string {
	return fmt.Sprintf("%03d", n)
}

// ParseID converts a catalog id back to its numeric form.
func ParseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("invalid species id %q: %w", id, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid species id %q: must be positive", id)
	}
	return n, nil
}
