package scheduler

import (
	"encoding/json"

	"tilerealm/internal/app/ports"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

func playerToRecord(p agent.Player) ports.PlayerRecord {
	return ports.PlayerRecord{
		PlayerID:  p.ID,
		X:         p.Pos.X,
		Y:         p.Pos.Y,
		Facing:    string(p.Facing),
		Health:    p.Health,
		Coins:     p.Coins,
		Inventory: marshalSlots(p.Inventory.Slots),
	}
}

// PlayerFromRecord is the boot-time inverse of playerToRecord.
func PlayerFromRecord(rec ports.PlayerRecord) *agent.Player {
	p := &agent.Player{
		ID:        rec.PlayerID,
		Pos:       world.Point{X: rec.X, Y: rec.Y},
		Facing:    world.Direction(rec.Facing),
		Health:    rec.Health,
		Coins:     rec.Coins,
		Inventory: economy.NewInventory(economy.DefaultInventorySlots),
	}
	var slots []economy.Slot
	if rec.Inventory != "" {
		if err := json.Unmarshal([]byte(rec.Inventory), &slots); err == nil && len(slots) > 0 {
			p.Inventory = economy.Inventory{Slots: slots}
		}
	}
	if p.Facing == "" {
		p.Facing = world.DirSouth
	}
	return p
}

func marshalSlots(slots []economy.Slot) string {
	b, err := json.Marshal(slots)
	if err != nil {
		return ""
	}
	return string(b)
}
