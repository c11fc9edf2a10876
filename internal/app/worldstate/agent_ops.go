package worldstate

import (
	"fmt"

	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/world"
)

// Agent-facing mutations used by the behavior engine. Each acquires the
// world mutex, so a behavior step and a player request can interleave but
// never overlap.

// MoveAgent steps the agent one tile in dir if the target is in bounds and
// walkable, updating facing either way.
func (w *World) MoveAgent(id string, dir world.Direction) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, exists := w.agents[id]
	if !exists {
		return w.record(fail(CodeNotFound, "unknown agent "+id))
	}
	a.Facing = dir
	dx, dy := dir.Delta()
	nx, ny := a.Pos.X+dx, a.Pos.Y+dy
	tile, inBounds := w.grid.At(nx, ny)
	if !inBounds {
		return w.record(fail(CodeOutOfRange, fmt.Sprintf("(%d,%d) is outside the world", nx, ny)))
	}
	if !tile.IsWalkable(w.tileTypes) {
		return w.record(fail(CodeInvalidState, fmt.Sprintf("(%d,%d) is not walkable", nx, ny)))
	}
	a.Pos = world.Point{X: nx, Y: ny}
	a.LastActionAt = w.now()
	w.markDirtyLocked()
	return w.record(succeed("moved", nil))
}

// AgentGather pulls one resource from the agent's current tile. Strangers
// are barred from player-placed resources.
func (w *World) AgentGather(id, resourceID string) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, exists := w.agents[id]
	if !exists {
		return w.record(fail(CodeNotFound, "unknown agent "+id))
	}
	out := w.gatherLocked(id, a.Pos.X, a.Pos.Y, resourceID, a.Kind == agent.KindStranger)
	if out.Success {
		a.LastActionAt = w.now()
	}
	return w.record(out)
}

// AgentClaim lets an NPC claim a tile under the same rules as a player.
func (w *World) AgentClaim(id string, x, y int) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, exists := w.agents[id]
	if !exists {
		return w.record(fail(CodeNotFound, "unknown agent "+id))
	}
	if a.Kind != agent.KindNPC {
		return w.record(fail(CodeInvalidState, "only npc agents claim territory"))
	}
	out := w.claimLocked(id, x, y)
	if out.Success {
		a.LastActionAt = w.now()
	}
	return w.record(out)
}

// AgentConsume eats one consumable unit from the agent's inventory,
// clamping health to [0, 100].
func (w *World) AgentConsume(id, resourceID string) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, exists := w.agents[id]
	if !exists {
		return w.record(fail(CodeNotFound, "unknown agent "+id))
	}
	res, known := w.resources.Get(resourceID)
	if !known || !res.Consumable {
		return w.record(fail(CodeInvalidState, resourceID+" is not consumable"))
	}
	if !a.Inventory.Remove(resourceID) {
		return w.record(fail(CodeNotFound, "agent is not holding "+resourceID))
	}
	a.Health += res.HealthGain
	a.ClampHealth()
	a.LastActionAt = w.now()
	w.markDirtyLocked()
	return w.record(succeed(fmt.Sprintf("consumed %s, health now %d", resourceID, a.Health), map[string]any{"health": a.Health}))
}

// SetAllegiance records a Stranger's pledge; a nil record drops it.
func (w *World) SetAllegiance(id string, pledge *agent.Allegiance) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, exists := w.agents[id]
	if !exists {
		return w.record(fail(CodeNotFound, "unknown agent "+id))
	}
	if a.Kind != agent.KindStranger {
		return w.record(fail(CodeInvalidState, "only strangers pledge allegiance"))
	}
	a.Allegiance = pledge
	w.markDirtyLocked()
	if pledge == nil {
		return w.record(succeed("allegiance dropped", nil))
	}
	return w.record(succeed("pledged to "+pledge.Sovereignty, nil))
}
