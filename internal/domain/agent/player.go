package agent

import (
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

// Player is an embodied human claimant. Claim range is measured from its
// position; Place targets the tile its facing points at.
type Player struct {
	ID        string            `json:"id"`
	Pos       world.Point       `json:"pos"`
	Facing    world.Direction   `json:"facing"`
	Health    int               `json:"health"`
	Coins     int               `json:"coins"`
	Inventory economy.Inventory `json:"inventory"`
}

func NewPlayer(id string, pos world.Point, coins int) *Player {
	return &Player{
		ID:        id,
		Pos:       pos,
		Facing:    world.DirSouth,
		Health:    StartingHealth,
		Coins:     coins,
		Inventory: economy.NewInventory(economy.DefaultInventorySlots),
	}
}

func (p *Player) ClampHealth() {
	if p.Health < 0 {
		p.Health = 0
	}
	if p.Health > 100 {
		p.Health = 100
	}
}
