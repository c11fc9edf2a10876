package behavior

import (
	"testing"

	"tilerealm/internal/app/worldstate"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

// strangerOn builds a world with one stranger standing on the given tile.
func strangerOn(t *testing.T, tile world.Tile) (*worldstate.World, *agent.Agent) {
	t.Helper()
	grid := world.NewGrid(10, 10, world.TileGrass)
	tile.X, tile.Y = 5, 5
	grid.SetTile(tile)
	a := &agent.Agent{
		ID:        agent.StrangerIDPrefix + "test",
		Kind:      agent.KindStranger,
		Pos:       world.Point{X: 5, Y: 5},
		Facing:    world.DirSouth,
		Health:    100,
		Inventory: economy.NewInventory(economy.DefaultInventorySlots),
	}
	w := worldstate.New(worldstate.Config{
		Grid:      grid,
		Agents:    []*agent.Agent{a},
		Resources: testCatalog(),
		TileTypes: testTileTypes(),
		Now:       fixedNow,
	})
	return w, a
}

func TestStrangerScavengesCurrentTile(t *testing.T) {
	w, a := strangerOn(t, world.Tile{Kind: world.TileGrass, Resources: []string{"wood"}})

	// survive skipped, gather fires, then the standing allegiance draw.
	e := scriptedEngine(t, w, 0.9, 0.1, 0.9)
	e.stepStranger(*a)

	got, _ := w.AgentSnapshot(a.ID)
	if got.Inventory.Count("wood") != 1 {
		t.Errorf("inventory wood = %d, want 1", got.Inventory.Count("wood"))
	}
	tile, _ := w.TileAt(5, 5)
	if tile.HasResource("wood") {
		t.Error("wood left on tile after scavenge")
	}
}

func TestStrangerNeverScavengesPlacedResources(t *testing.T) {
	w, a := strangerOn(t, world.Tile{
		Kind:            world.TileGrass,
		Resources:       []string{"wood"},
		PlacedResources: []string{"wood"},
	})

	// The gather gate passes but scavenge declines, so the chain
	// continues to move and then the allegiance draw.
	e := scriptedEngine(t, w, 0.9, 0.1, 0.9, 0.9)
	e.stepStranger(*a)

	got, _ := w.AgentSnapshot(a.ID)
	if got.Inventory.Count("wood") != 0 {
		t.Error("stranger scavenged a placed resource")
	}
	tile, _ := w.TileAt(5, 5)
	if !tile.HasResource("wood") {
		t.Error("placed wood vanished from the tile")
	}
}

func TestStrangerAllegianceDrawHappensAfterActing(t *testing.T) {
	w, a := strangerOn(t, world.Tile{Kind: world.TileGrass, Resources: []string{"wood"}})

	// Even though gather ended the chain, one more draw gates the
	// allegiance evaluation. With no standings it is a no-op, but the
	// draw itself must happen: the script would fail on a missing or
	// extra draw.
	e := scriptedEngine(t, w, 0.9, 0.1, 0.01)
	e.stepStranger(*a)
}

func TestStrangerWandersPreferringResources(t *testing.T) {
	grid := world.NewGrid(10, 10, world.TileGrass)
	grid.SetTile(world.Tile{X: 6, Y: 5, Kind: world.TileGrass, Resources: []string{"wood"}})
	a := &agent.Agent{
		ID:        agent.StrangerIDPrefix + "test",
		Kind:      agent.KindStranger,
		Pos:       world.Point{X: 5, Y: 5},
		Facing:    world.DirSouth,
		Health:    100,
		Inventory: economy.NewInventory(economy.DefaultInventorySlots),
	}
	w := worldstate.New(worldstate.Config{
		Grid:      grid,
		Agents:    []*agent.Agent{a},
		Resources: testCatalog(),
		TileTypes: testTileTypes(),
		Now:       fixedNow,
	})

	// survive and gather skipped, move fires; east is the only
	// resource-bearing neighbor so PickN sees one candidate.
	e := scriptedEngine(t, w, 0.9, 0.9, 0.1, 0.9)
	e.stepStranger(*a)

	got, _ := w.AgentSnapshot(a.ID)
	if got.Pos != (world.Point{X: 6, Y: 5}) {
		t.Errorf("pos = %+v, want the resource-bearing (6,5)", got.Pos)
	}
}
