package worldstate

import (
	"testing"

	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

func putResources(t *testing.T, w *World, x, y int, ids ...string) {
	t.Helper()
	tile, ok := w.TileAt(x, y)
	if !ok {
		t.Fatalf("no tile at (%d,%d)", x, y)
	}
	tile.Resources = append(tile.Resources, ids...)
	w.grid.SetTile(tile)
}

func TestGatherMovesResourceToInventory(t *testing.T) {
	w := newTestWorld(t)
	putResources(t, w, 5, 6, "wood", "wood")

	if out := w.Gather("alice", 5, 6, "wood"); !out.Success {
		t.Fatalf("Gather failed: %+v", out)
	}
	p, _ := w.PlayerSnapshot("alice")
	if got := p.Inventory.Count("wood"); got != 1 {
		t.Errorf("inventory wood = %d, want 1", got)
	}
	tile, _ := w.TileAt(5, 6)
	if len(tile.Resources) != 1 {
		t.Errorf("tile resources = %v, want one wood left", tile.Resources)
	}

	// Draining the tile never goes negative.
	w.Gather("alice", 5, 6, "wood")
	out := w.Gather("alice", 5, 6, "wood")
	if out.Success || out.Code != CodeNotFound {
		t.Fatalf("gather from empty tile = %+v, want NOT_FOUND", out)
	}
}

func TestGatherFromForeignClaim(t *testing.T) {
	w := newTestWorld(t)
	w.AddPlayer(agent.NewPlayer("bob", world.Point{X: 5, Y: 5}, 100))
	putResources(t, w, 5, 6, "wood")
	if out := w.Claim("bob", 5, 6); !out.Success {
		t.Fatalf("setup claim failed: %+v", out)
	}
	out := w.Gather("alice", 5, 6, "wood")
	if out.Success || out.Code != CodeNotYours {
		t.Fatalf("gather from bob's tile = %+v, want NOT_YOURS", out)
	}
	// The owner can still gather from their own claim.
	if out := w.Gather("bob", 5, 6, "wood"); !out.Success {
		t.Fatalf("owner gather failed: %+v", out)
	}
}

func TestGatherInventoryFull(t *testing.T) {
	w := newTestWorld(t)
	putResources(t, w, 5, 6, "crystal")
	p := w.players["alice"]
	for i := range p.Inventory.Slots {
		p.Inventory.Slots[i] = economy.Slot{ResourceID: "stone", Quantity: economy.MaxStackSize}
	}
	out := w.Gather("alice", 5, 6, "crystal")
	if out.Success || out.Code != CodeInventoryFull {
		t.Fatalf("gather into full inventory = %+v, want INVENTORY_FULL", out)
	}
	// The resource stays on the tile.
	tile, _ := w.TileAt(5, 6)
	if !tile.HasResource("crystal") {
		t.Error("failed gather removed the resource from the tile")
	}
}

func TestConsumeHealsAndClamps(t *testing.T) {
	w := newTestWorld(t)
	p := w.players["alice"]
	p.Health = 30
	p.Inventory.Add("berry")

	out := w.Consume("alice", "berry")
	if !out.Success {
		t.Fatalf("Consume failed: %+v", out)
	}
	if got, _ := w.PlayerSnapshot("alice"); got.Health != 50 {
		t.Errorf("health = %d, want 50", got.Health)
	}

	// Healing past the cap clamps at 100.
	p.Health = 95
	p.Inventory.Add("berry")
	w.Consume("alice", "berry")
	if got, _ := w.PlayerSnapshot("alice"); got.Health != 100 {
		t.Errorf("health = %d, want 100 after clamp", got.Health)
	}
}

func TestConsumeRejectsNonConsumable(t *testing.T) {
	w := newTestWorld(t)
	w.players["alice"].Inventory.Add("wood")
	if out := w.Consume("alice", "wood"); out.Code != CodeInvalidState {
		t.Fatalf("consume wood = %+v, want INVALID_STATE", out)
	}
	if out := w.Consume("alice", "berry"); out.Code != CodeNotFound {
		t.Fatalf("consume unheld berry = %+v, want NOT_FOUND", out)
	}
}

func TestPlaceFacingDropsItemOnTargetTile(t *testing.T) {
	w := newTestWorld(t)
	p := w.players["alice"]
	p.Facing = world.DirEast
	p.Inventory.Add("wood")

	if out := w.PlaceFacing("alice", "wood"); !out.Success {
		t.Fatalf("PlaceFacing failed: %+v", out)
	}
	tile, _ := w.TileAt(6, 5)
	if !tile.HasResource("wood") || !tile.IsPlaced("wood") {
		t.Fatalf("target tile = %+v, want placed wood", tile)
	}
	if got, _ := w.PlayerSnapshot("alice"); got.Inventory.Count("wood") != 0 {
		t.Error("placing should consume the held item")
	}
}

func TestPlaceFacingTerraforms(t *testing.T) {
	w := newTestWorld(t)
	target, _ := w.TileAt(5, 6)
	target.Kind = world.TileDirt
	w.grid.SetTile(target)
	w.players["alice"].Inventory.Add("grass_seed")

	if out := w.PlaceFacing("alice", "grass_seed"); !out.Success {
		t.Fatalf("terraform failed: %+v", out)
	}
	tile, _ := w.TileAt(5, 6)
	if tile.Kind != world.TileGrass {
		t.Errorf("tile kind = %s, want grass", tile.Kind)
	}
	if tile.HasResource("grass_seed") {
		t.Error("terraforming should not drop the item on the tile")
	}
}

func TestPlaceFacingStrikesDurableTarget(t *testing.T) {
	w := newTestWorld(t)
	putResources(t, w, 5, 6, "stone")
	w.players["alice"].Inventory.Add("pickaxe")

	// stone has durability 10, the pickaxe deals 5 per strike.
	if out := w.PlaceFacing("alice", "pickaxe"); !out.Success {
		t.Fatalf("first strike failed: %+v", out)
	}
	tile, _ := w.TileAt(5, 6)
	if got := tile.Durability["stone"]; got != 5 {
		t.Fatalf("durability after first strike = %d, want 5", got)
	}
	if out := w.PlaceFacing("alice", "pickaxe"); !out.Success {
		t.Fatalf("second strike failed: %+v", out)
	}
	tile, _ = w.TileAt(5, 6)
	if tile.HasResource("stone") {
		t.Error("stone should be destroyed after its durability ran out")
	}
	// The tool is not consumed.
	if got, _ := w.PlayerSnapshot("alice"); got.Inventory.Count("pickaxe") != 1 {
		t.Error("striking consumed the pickaxe")
	}
}
