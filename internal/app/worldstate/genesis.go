package worldstate

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

type GenesisConfig struct {
	Width         int
	Height        int
	NPCCount      int
	StrangerCount int
	Rand          *rand.Rand
}

var terrainWeights = []struct {
	kind   world.TileKind
	weight int
}{
	{world.TileGrass, 55},
	{world.TileForest, 15},
	{world.TileMountain, 8},
	{world.TileSand, 8},
	{world.TileDirt, 8},
	{world.TileWater, 6},
}

// GenerateGrid rolls a fresh world: weighted terrain per tile, then one
// spawn roll per catalog resource on every tile whose terrain the
// resource spawns on. Every id placed resolves in the catalog by
// construction, which is the tile invariant.
func GenerateGrid(cfg GenesisConfig, resources economy.Catalog) *world.Grid {
	// Stable id order keeps generation reproducible for a given seed.
	ids := make([]string, 0, len(resources))
	for id := range resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	grid := world.NewGrid(cfg.Width, cfg.Height, world.TileGrass)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			t := grid.Rows[y][x]
			t.Kind = rollTerrain(cfg.Rand)
			for _, id := range ids {
				res := resources[id]
				if res.SpawnsOn(t.Kind) && cfg.Rand.Float64() < res.SpawnChance {
					t.Resources = append(t.Resources, id)
				}
			}
			grid.Rows[y][x] = t
		}
	}
	return grid
}

func rollTerrain(rng *rand.Rand) world.TileKind {
	total := 0
	for _, tw := range terrainWeights {
		total += tw.weight
	}
	roll := rng.Intn(total)
	for _, tw := range terrainWeights {
		roll -= tw.weight
		if roll < 0 {
			return tw.kind
		}
	}
	return world.TileGrass
}

// SpawnPopulation creates the configured NPC and Stranger agents on random
// walkable tiles. The simulation loop itself never creates or destroys
// agents; population changes happen only here.
func SpawnPopulation(cfg GenesisConfig, grid *world.Grid, types world.TileTypeCatalog) []*agent.Agent {
	agents := make([]*agent.Agent, 0, cfg.NPCCount+cfg.StrangerCount)
	for i := 0; i < cfg.NPCCount; i++ {
		a := newAgent(agent.KindNPC, agent.NPCIDPrefix+uuid.NewString(), cfg.Rand, grid, types)
		a.Coins = agent.NPCStartingCoins
		agents = append(agents, a)
	}
	for i := 0; i < cfg.StrangerCount; i++ {
		agents = append(agents, newAgent(agent.KindStranger, agent.StrangerIDPrefix+uuid.NewString(), cfg.Rand, grid, types))
	}
	return agents
}

func newAgent(kind agent.Kind, id string, rng *rand.Rand, grid *world.Grid, types world.TileTypeCatalog) *agent.Agent {
	return &agent.Agent{
		ID:        id,
		Kind:      kind,
		Pos:       randomWalkablePoint(rng, grid, types),
		Facing:    world.DirSouth,
		Health:    agent.StartingHealth,
		Inventory: economy.NewInventory(economy.DefaultInventorySlots),
	}
}

func randomWalkablePoint(rng *rand.Rand, grid *world.Grid, types world.TileTypeCatalog) world.Point {
	if grid.Width == 0 || grid.Height == 0 {
		return world.Point{}
	}
	for attempt := 0; attempt < 64; attempt++ {
		x := rng.Intn(grid.Width)
		y := rng.Intn(grid.Height)
		if t, ok := grid.At(x, y); ok && t.IsWalkable(types) {
			return world.Point{X: x, Y: y}
		}
	}
	return world.Point{}
}
