package world

type TileKind string

const (
	TileGrass    TileKind = "grass"
	TileForest   TileKind = "forest"
	TileMountain TileKind = "mountain"
	TileSand     TileKind = "sand"
	TileDirt     TileKind = "dirt"
	TileWater    TileKind = "water"
)

// TileType is a terrain catalog entry. Display fields ride along for
// clients; the simulation only reads Walkable.
type TileType struct {
	Walkable bool   `yaml:"walkable" json:"walkable"`
	Label    string `yaml:"label" json:"label"`
	Color    string `yaml:"color" json:"color"`
}

type TileTypeCatalog map[TileKind]TileType

type Tile struct {
	X               int            `json:"x"`
	Y               int            `json:"y"`
	Kind            TileKind       `json:"kind"`
	ClaimedBy       string         `json:"claimed_by,omitempty"`
	Resources       []string       `json:"resources,omitempty"`
	PlacedResources []string       `json:"placed_resources,omitempty"`
	Name            string         `json:"name,omitempty"`
	Durability      map[string]int `json:"durability,omitempty"`

	// Walkable overrides nothing when the kind resolves in the terrain
	// catalog; it is the fallback for tiles carrying a kind the catalog
	// does not know.
	Walkable *bool `json:"walkable,omitempty"`
}

func (t Tile) IsClaimed() bool {
	return t.ClaimedBy != ""
}

// HasResource reports whether at least one instance of id sits on the tile.
func (t Tile) HasResource(id string) bool {
	for _, r := range t.Resources {
		if r == id {
			return true
		}
	}
	return false
}

// IsPlaced reports whether id was manually placed on the tile. Placed
// resources are off limits to wandering agents.
func (t Tile) IsPlaced(id string) bool {
	for _, r := range t.PlacedResources {
		if r == id {
			return true
		}
	}
	return false
}

// IsWalkable resolves walkability from the terrain catalog, falling back to
// the per-tile flag when the catalog misses the kind.
func (t Tile) IsWalkable(types TileTypeCatalog) bool {
	if tt, ok := types[t.Kind]; ok {
		return tt.Walkable
	}
	if t.Walkable != nil {
		return *t.Walkable
	}
	return false
}
