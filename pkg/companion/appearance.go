package companion

import (
	"strings"

	"github.com/AccelByte/extend-step-companion/pkg/species"
)

const (
	spritePrefix  = "sprite_"
	variantSuffix = "s"
	eggSuffix     = "_egg"
	cryPrefix     = "cry_"

	// EggName is shown while the companion has not hatched.
	EggName = "Egg"
)

// Catalog is the subset of the species catalog needed to resolve an appearance.
type Catalog interface {
	Lookup(id string) (species.Species, bool)
	HasEggForm(id string) bool
}

// Snapshot is the read-only view handed to renderers and transports.
type Snapshot struct {
	SpeciesID   string  `json:"species_id"`
	Name        string  `json:"name"`
	IsEgg       bool    `json:"is_egg"`
	IsVariant   bool    `json:"is_variant"`
	Experience  int     `json:"experience"`
	Level       int     `json:"level"`
	Day         string  `json:"day"`
	Sprite      string  `json:"sprite"`
	CryAsset    string  `json:"cry_asset,omitempty"`
	ExpProgress float64 `json:"exp_progress"`
}

// Resolve builds the snapshot for s. An egg whose species has no egg
// artwork is shown hatched; a species missing from the catalog is shown
// as the placeholder identity. Resolution never fails.
func Resolve(s State, catalog Catalog) Snapshot {
	snap := Snapshot{
		SpeciesID:   s.SpeciesID,
		IsEgg:       s.IsEgg,
		IsVariant:   s.IsVariant,
		Experience:  s.Experience,
		Level:       s.Level(),
		Day:         s.CurrentDay.String(),
		ExpProgress: s.ExpProgress(),
	}

	if snap.IsEgg && catalog.HasEggForm(s.SpeciesID) {
		snap.Name = EggName
		snap.Sprite = spritePrefix + s.SpeciesID + eggSuffix
		return snap
	}
	snap.IsEgg = false

	spriteID := s.SpeciesID
	entry, ok := catalog.Lookup(s.SpeciesID)
	if ok && entry.Name != "" {
		snap.Name = entry.Name
	} else {
		snap.Name = species.PlaceholderName
		spriteID = species.PlaceholderID
	}

	snap.Sprite = spritePrefix + spriteID
	if s.IsVariant {
		snap.Sprite += variantSuffix
	}
	snap.CryAsset = CryAsset(snap.Name)
	return snap
}

// CryAsset maps a display name to its audio asset ("Mr-Mime" -> "cry_mr_mime").
func CryAsset(name string) string {
	return cryPrefix + strings.ReplaceAll(strings.ToLower(name), "-", "_")
}
