package behavior

import (
	"testing"

	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/world"
)

func TestNPCSurvivalPreemptsEverything(t *testing.T) {
	w, a := testWorld(t, agent.KindNPC)
	a.Health = 10
	a.Inventory.Add("berry")

	// One draw: the survive gate passes and the chain ends there.
	e := scriptedEngine(t, w, 0.1)
	e.stepNPC(*a)

	got, _ := w.AgentSnapshot(a.ID)
	if got.Health != 30 {
		t.Errorf("health = %d, want 30", got.Health)
	}
	if got.Inventory.Count("berry") != 0 {
		t.Error("berry not consumed")
	}
	for _, tile := range w.NeighborTiles(5, 5) {
		if tile.IsClaimed() {
			t.Error("survival turn still claimed territory")
		}
	}
}

func TestNPCSurviveNeedsLowHealthAndConsumable(t *testing.T) {
	w, a := testWorld(t, agent.KindNPC)
	a.Inventory.Add("berry")

	// Healthy: the gate passes but survive declines, the turn falls
	// through to claim.
	e := scriptedEngine(t, w, 0.1, 0.1)
	e.stepNPC(*a)
	got, _ := w.AgentSnapshot(a.ID)
	if got.Inventory.Count("berry") != 1 {
		t.Error("healthy npc ate its berry")
	}
	if tile, _ := w.TileAt(5, 4); tile.ClaimedBy != a.ID {
		t.Errorf("fall-through claim missing: ClaimedBy = %q", tile.ClaimedBy)
	}
}

func TestNPCClaimsAdjacentUnclaimedTile(t *testing.T) {
	w, a := testWorld(t, agent.KindNPC)
	e := scriptedEngine(t, w, 0.9, 0.1)
	e.stepNPC(*a)

	claimed := 0
	for _, tile := range w.NeighborTiles(5, 5) {
		if tile.ClaimedBy == a.ID {
			claimed++
		}
	}
	if claimed != 1 {
		t.Fatalf("claimed %d neighbor tiles, want exactly 1", claimed)
	}
	got, _ := w.AgentSnapshot(a.ID)
	if got.Coins != agent.NPCStartingCoins-10 {
		t.Errorf("coins = %d, want %d", got.Coins, agent.NPCStartingCoins-10)
	}
}

func TestNPCClaimSkipsUnaffordableTiles(t *testing.T) {
	w, a := testWorld(t, agent.KindNPC)
	a.Coins = 0

	// Claim gate passes but no tile is affordable; the turn falls
	// through to move.
	e := scriptedEngine(t, w, 0.9, 0.1, 0.1)
	e.stepNPC(*a)

	for _, tile := range w.NeighborTiles(5, 5) {
		if tile.IsClaimed() {
			t.Error("broke npc claimed a tile")
		}
	}
	got, _ := w.AgentSnapshot(a.ID)
	if got.Pos == (world.Point{X: 5, Y: 5}) {
		t.Error("fall-through move did not happen")
	}
}

func TestNPCWanders(t *testing.T) {
	w, a := testWorld(t, agent.KindNPC)
	e := scriptedEngine(t, w, 0.9, 0.9, 0.1)
	e.stepNPC(*a)

	got, _ := w.AgentSnapshot(a.ID)
	// PickN always chooses index 0: north of (5,5).
	if got.Pos != (world.Point{X: 5, Y: 4}) {
		t.Errorf("pos = %+v, want (5,4)", got.Pos)
	}
}
