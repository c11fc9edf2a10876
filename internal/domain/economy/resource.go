package economy

import "tilerealm/internal/domain/world"

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

// Resource is a catalog entry. Catalog entries are immutable for the
// lifetime of a simulation pass; authoring happens out of band.
type Resource struct {
	ID               string           `yaml:"id" json:"id"`
	Rarity           Rarity           `yaml:"rarity" json:"rarity"`
	CoinValue        int              `yaml:"coin_value" json:"coin_value"`
	Consumable       bool             `yaml:"consumable" json:"consumable"`
	HealthGain       int              `yaml:"health_gain" json:"health_gain"`
	CanInflictDamage bool             `yaml:"can_inflict_damage" json:"can_inflict_damage"`
	Damage           int              `yaml:"damage" json:"damage"`
	SpawnTiles       []world.TileKind `yaml:"spawn_tiles" json:"spawn_tiles"`
	SpawnChance      float64          `yaml:"spawn_chance" json:"spawn_chance"`
	Durability       int              `yaml:"durability" json:"durability"`

	// ProducesTile, when set, makes placing the item rewrite the target
	// tile's terrain instead of dropping the item on it.
	ProducesTile world.TileKind `yaml:"produces_tile,omitempty" json:"produces_tile,omitempty"`
}

type Catalog map[string]Resource

func (c Catalog) Get(id string) (Resource, bool) {
	r, ok := c[id]
	return r, ok
}

// SpawnsOn reports whether the resource may spawn on the given terrain.
func (r Resource) SpawnsOn(kind world.TileKind) bool {
	for _, k := range r.SpawnTiles {
		if k == kind {
			return true
		}
	}
	return false
}
