package worldstate

import (
	"math/rand"
	"testing"

	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/world"
)

func TestGenerateGridIsReproduciblePerSeed(t *testing.T) {
	catalog := testCatalog()
	gen := func() *world.Grid {
		return GenerateGrid(GenesisConfig{Width: 16, Height: 16, Rand: rand.New(rand.NewSource(7))}, catalog)
	}
	a, b := gen(), gen()
	for y := range a.Rows {
		for x := range a.Rows[y] {
			ta, tb := a.Rows[y][x], b.Rows[y][x]
			if ta.Kind != tb.Kind || len(ta.Resources) != len(tb.Resources) {
				t.Fatalf("tiles diverge at (%d,%d): %+v vs %+v", x, y, ta, tb)
			}
		}
	}
}

func TestGenerateGridResourcesResolveInCatalog(t *testing.T) {
	catalog := testCatalog()
	grid := GenerateGrid(GenesisConfig{Width: 24, Height: 24, Rand: rand.New(rand.NewSource(1))}, catalog)
	for _, row := range grid.Rows {
		for _, tile := range row {
			for _, id := range tile.Resources {
				res, ok := catalog.Get(id)
				if !ok {
					t.Fatalf("tile (%d,%d) carries unknown resource %q", tile.X, tile.Y, id)
				}
				if !res.SpawnsOn(tile.Kind) {
					t.Fatalf("%q spawned on %s, not in its spawn tiles", id, tile.Kind)
				}
			}
		}
	}
}

func TestSpawnPopulationCountsAndPlacement(t *testing.T) {
	cfg := GenesisConfig{Width: 16, Height: 16, NPCCount: 4, StrangerCount: 7, Rand: rand.New(rand.NewSource(3))}
	grid := world.NewGrid(cfg.Width, cfg.Height, world.TileGrass)
	types := testTileTypes()

	agents := SpawnPopulation(cfg, grid, types)
	if len(agents) != 11 {
		t.Fatalf("population = %d, want 11", len(agents))
	}
	npcs, strangers := 0, 0
	seen := map[string]bool{}
	for _, a := range agents {
		if seen[a.ID] {
			t.Fatalf("duplicate agent id %s", a.ID)
		}
		seen[a.ID] = true
		if !agent.IsSynthetic(a.ID) {
			t.Errorf("agent id %q is not marked synthetic", a.ID)
		}
		tile, ok := grid.At(a.Pos.X, a.Pos.Y)
		if !ok || !tile.IsWalkable(types) {
			t.Errorf("agent %s spawned on unwalkable (%d,%d)", a.ID, a.Pos.X, a.Pos.Y)
		}
		switch a.Kind {
		case agent.KindNPC:
			npcs++
			if a.Coins != agent.NPCStartingCoins {
				t.Errorf("npc coins = %d, want %d", a.Coins, agent.NPCStartingCoins)
			}
		case agent.KindStranger:
			strangers++
			if a.Coins != 0 {
				t.Errorf("stranger coins = %d, want 0", a.Coins)
			}
		}
		if a.Health != agent.StartingHealth {
			t.Errorf("agent health = %d, want %d", a.Health, agent.StartingHealth)
		}
	}
	if npcs != 4 || strangers != 7 {
		t.Fatalf("npcs=%d strangers=%d, want 4 and 7", npcs, strangers)
	}
}
