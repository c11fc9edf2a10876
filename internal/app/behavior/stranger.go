package behavior

import (
	"tilerealm/internal/domain/agent"
)

// stepStranger runs the wanderer policy: stay alive, scavenge the current
// tile, wander. Strangers never claim territory. Allegiance evaluation
// always gets its draw afterwards, even when an earlier rule acted.
func (e *Engine) stepStranger(a agent.Agent) {
	e.runChain([]Rule{
		{Name: "survive", Chance: agent.StrangerConsumeChance, Fire: func() bool { return e.survive(a) }},
		{Name: "gather", Chance: agent.StrangerGatherChance, Fire: func() bool { return e.scavenge(a) }},
		{Name: "move", Chance: agent.StrangerMoveChance, Fire: func() bool { return e.wander(a) }},
	})
	if e.Roll() < agent.AllegianceEvalChance {
		e.evaluateAllegiance(a)
	}
}

// scavenge gathers the first harvestable resource on the stranger's
// current tile. Player-placed resources are never harvestable.
func (e *Engine) scavenge(a agent.Agent) bool {
	tile, ok := e.World.TileAt(a.Pos.X, a.Pos.Y)
	if !ok {
		return false
	}
	for _, id := range tile.Resources {
		if tile.IsPlaced(id) {
			continue
		}
		if e.World.AgentGather(a.ID, id).Success {
			return true
		}
	}
	return false
}
