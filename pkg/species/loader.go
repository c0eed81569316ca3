package species

import (
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// maxSuggestionDistance bounds how far a misspelt name may be from a
// known one before no suggestion is offered.
const maxSuggestionDistance = 3

// File is the on-disk catalog layout.
//
//	species:
//	  - id: "001"
//	    name: Bulbasaur
//	    evolves_to: Ivysaur   # id or name
//	    evolution_level: 16
//	    egg: true
type File struct {
	Species []Species `yaml:"species"`
}

// Load reads a catalog file that replaces the builtin table.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	logrus.Infof("loaded %d species from %s", catalog.Len(), path)
	return catalog, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if len(f.Species) == 0 {
		return nil, fmt.Errorf("catalog has no species")
	}

	byID := make(map[string]int, len(f.Species))
	byName := make(map[string]string, len(f.Species))
	for i := range f.Species {
		s := &f.Species[i]
		n, err := ParseID(s.ID)
		if err != nil {
			return nil, err
		}
		s.ID = FormatID(n)
		if s.Name == "" {
			return nil, fmt.Errorf("species %s has empty name", s.ID)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate species id: %s", s.ID)
		}
		byID[s.ID] = i
		byName[strings.ToLower(s.Name)] = s.ID
	}

	for i := range f.Species {
		s := &f.Species[i]
		if s.EvolvesTo == "" {
			s.EvolutionLevel = NoEvolution
			continue
		}
		target, err := resolveTarget(s.EvolvesTo, byID, byName)
		if err != nil {
			return nil, fmt.Errorf("species %s (%s): %w", s.ID, s.Name, err)
		}
		if target == s.ID {
			return nil, fmt.Errorf("species %s (%s) evolves into itself", s.ID, s.Name)
		}
		if s.EvolutionLevel <= 0 {
			return nil, fmt.Errorf("species %s (%s) has evolution target but level %d", s.ID, s.Name, s.EvolutionLevel)
		}
		s.EvolvesTo = target
	}

	return NewCatalog(f.Species), nil
}

func resolveTarget(ref string, byID map[string]int, byName map[string]string) (string, error) {
	if n, err := ParseID(ref); err == nil {
		id := FormatID(n)
		if _, ok := byID[id]; ok {
			return id, nil
		}
		return "", fmt.Errorf("unknown evolution target id %q", ref)
	}

	if id, ok := byName[strings.ToLower(ref)]; ok {
		return id, nil
	}

	if suggestion := suggestName(ref, byName); suggestion != "" {
		return "", fmt.Errorf("unknown evolution target %q, did you mean %q?", ref, suggestion)
	}
	return "", fmt.Errorf("unknown evolution target %q", ref)
}

func suggestName(ref string, byName map[string]string) string {
	ref = strings.ToLower(ref)
	best := ""
	bestDist := maxSuggestionDistance + 1
	for name := range byName {
		dist := levenshtein.ComputeDistance(ref, name)
		if dist < bestDist || (dist == bestDist && name < best) {
			best = name
			bestDist = dist
		}
	}
	if bestDist > maxSuggestionDistance {
		return ""
	}
	return best
}
