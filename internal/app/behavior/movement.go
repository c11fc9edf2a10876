package behavior

import (
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/world"
)

var directions = []world.Direction{world.DirNorth, world.DirSouth, world.DirEast, world.DirWest}

// wander moves the agent to one adjacent walkable tile. Resource-bearing
// neighbors are preferred: when any exist, the choice is uniform among
// them; otherwise uniform among all walkable candidates. Returns false
// when no candidate exists.
func (e *Engine) wander(a agent.Agent) bool {
	types := e.World.TileTypes()
	walkable := make([]world.Direction, 0, 4)
	withResources := make([]world.Direction, 0, 4)
	for _, dir := range directions {
		dx, dy := dir.Delta()
		tile, ok := e.World.TileAt(a.Pos.X+dx, a.Pos.Y+dy)
		if !ok || !tile.IsWalkable(types) {
			continue
		}
		walkable = append(walkable, dir)
		if len(tile.Resources) > 0 {
			withResources = append(withResources, dir)
		}
	}
	candidates := walkable
	if len(withResources) > 0 {
		candidates = withResources
	}
	if len(candidates) == 0 {
		return false
	}
	dir := candidates[e.PickN(len(candidates))]
	return e.World.MoveAgent(a.ID, dir).Success
}
