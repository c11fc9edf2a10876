package scheduler

import (
	"testing"

	"tilerealm/internal/app/ports"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/world"
)

func TestPlayerRecordRoundTrip(t *testing.T) {
	p := agent.NewPlayer("alice", world.Point{X: 3, Y: 7}, 42)
	p.Facing = world.DirEast
	p.Health = 73
	p.Inventory.Add("wood")
	p.Inventory.Add("wood")
	p.Inventory.Add("berry")

	got := PlayerFromRecord(playerToRecord(*p))
	if got.ID != "alice" || got.Pos != p.Pos || got.Facing != world.DirEast {
		t.Fatalf("round trip identity fields: %+v", got)
	}
	if got.Health != 73 || got.Coins != 42 {
		t.Errorf("health/coins = %d/%d, want 73/42", got.Health, got.Coins)
	}
	if got.Inventory.Count("wood") != 2 || got.Inventory.Count("berry") != 1 {
		t.Errorf("inventory lost stacks: %+v", got.Inventory.Slots)
	}
}

func TestPlayerFromRecordDefaults(t *testing.T) {
	got := PlayerFromRecord(ports.PlayerRecord{PlayerID: "bob", Health: 100})
	if got.Facing != world.DirSouth {
		t.Errorf("facing = %q, want default south", got.Facing)
	}
	if len(got.Inventory.Slots) == 0 {
		t.Error("empty record should still get a usable inventory")
	}
}
