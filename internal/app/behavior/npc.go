package behavior

import (
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
)

// stepNPC runs the territory-claiming policy: stay alive, then grab land,
// then wander. Priority is encoded by rule order.
func (e *Engine) stepNPC(a agent.Agent) {
	e.runChain([]Rule{
		{Name: "survive", Chance: agent.NPCConsumeChance, Fire: func() bool { return e.survive(a) }},
		{Name: "claim", Chance: agent.NPCClaimChance, Fire: func() bool { return e.claimAdjacent(a) }},
		{Name: "move", Chance: agent.NPCMoveChance, Fire: func() bool { return e.wander(a) }},
	})
}

// survive consumes a healing item when health is below the survival
// threshold. Fires only when both the condition and a valid consumable
// line up; consumption pre-empts everything else this turn.
func (e *Engine) survive(a agent.Agent) bool {
	if a.Health >= agent.SurvivalHealthThreshold {
		return false
	}
	id, ok := a.Inventory.FirstConsumable(e.World.ResourceCatalog())
	if !ok {
		return false
	}
	return e.World.AgentConsume(a.ID, id).Success
}

// claimAdjacent claims one adjacent unclaimed tile the NPC can afford.
func (e *Engine) claimAdjacent(a agent.Agent) bool {
	catalog := e.World.ResourceCatalog()
	for _, tile := range e.World.NeighborTiles(a.Pos.X, a.Pos.Y) {
		if tile.IsClaimed() {
			continue
		}
		if a.Coins < economy.TileValue(tile, catalog) {
			continue
		}
		if e.World.AgentClaim(a.ID, tile.X, tile.Y).Success {
			return true
		}
	}
	return false
}
