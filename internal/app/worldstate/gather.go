package worldstate

import (
	"fmt"

	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

// Gather moves one instance of resourceID from the tile at (x, y) into the
// actor's inventory. The tile may be unclaimed or claimed by the actor;
// gathering from someone else's claim fails with NOT_YOURS.
func (w *World) Gather(actorID string, x, y int, resourceID string) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.record(w.gatherLocked(actorID, x, y, resourceID, false))
}

func (w *World) gatherLocked(actorID string, x, y int, resourceID string, excludePlaced bool) Outcome {
	tile, ok := w.grid.At(x, y)
	if !ok {
		return fail(CodeNotFound, fmt.Sprintf("no tile at (%d,%d)", x, y))
	}
	if tile.IsClaimed() && tile.ClaimedBy != actorID {
		return fail(CodeNotYours, fmt.Sprintf("tile (%d,%d) belongs to %s", x, y, tile.ClaimedBy))
	}
	if !tile.HasResource(resourceID) {
		return fail(CodeNotFound, resourceID+" is not on this tile")
	}
	if excludePlaced && tile.IsPlaced(resourceID) {
		return fail(CodeNotYours, resourceID+" was placed by hand and cannot be scavenged")
	}
	inv := w.inventoryOfLocked(actorID)
	if inv == nil {
		return fail(CodeNotFound, "unknown actor "+actorID)
	}
	if !inv.Add(resourceID) {
		return fail(CodeInventoryFull, "inventory is full")
	}
	tile.Resources = removeFirst(tile.Resources, resourceID)
	tile.PlacedResources = removeFirst(tile.PlacedResources, resourceID)
	w.grid.SetTile(tile)
	w.markDirtyLocked()
	return succeed("gathered "+resourceID, nil)
}

// PlaceFacing uses the held item on the tile directly in front of the
// player. Plain items are placed onto the tile; tile-producing items
// rewrite its terrain; damaging items chip away at a placed target.
func (w *World) PlaceFacing(playerID, itemID string) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[playerID]
	if !ok {
		return w.record(fail(CodeNotFound, "unknown player "+playerID))
	}
	dx, dy := p.Facing.Delta()
	return w.record(w.useItemLocked(&p.Inventory, p.Pos.X+dx, p.Pos.Y+dy, itemID))
}

func (w *World) useItemLocked(inv *economy.Inventory, x, y int, itemID string) Outcome {
	res, ok := w.resources.Get(itemID)
	if !ok {
		return fail(CodeNotFound, "unknown resource "+itemID)
	}
	tile, ok := w.grid.At(x, y)
	if !ok {
		return fail(CodeOutOfRange, "nothing to target there")
	}

	if inv.Count(itemID) == 0 {
		return fail(CodeNotFound, "you are not holding "+itemID)
	}

	// Damaging items strike whatever durable target sits on the tile and
	// are not consumed in the process.
	if res.CanInflictDamage {
		return w.strikeTileLocked(tile, res.Damage)
	}

	if res.ProducesTile != "" {
		inv.Remove(itemID)
		tile.Kind = res.ProducesTile
		w.grid.SetTile(tile)
		w.markDirtyLocked()
		return succeed(fmt.Sprintf("turned (%d,%d) into %s", x, y, res.ProducesTile), nil)
	}

	inv.Remove(itemID)
	tile.Resources = append(append([]string{}, tile.Resources...), itemID)
	tile.PlacedResources = append(append([]string{}, tile.PlacedResources...), itemID)
	w.grid.SetTile(tile)
	w.markDirtyLocked()
	return succeed("placed "+itemID, nil)
}

// strikeTileLocked applies damage to the first durable resource present,
// removing it once its tracked durability runs out.
func (w *World) strikeTileLocked(tile world.Tile, damage int) Outcome {
	if damage <= 0 {
		damage = 1
	}
	for _, id := range tile.Resources {
		res, ok := w.resources.Get(id)
		if !ok || res.Durability <= 0 {
			continue
		}
		remaining, tracked := tile.Durability[id]
		if !tracked {
			remaining = res.Durability
		}
		remaining -= damage
		if remaining > 0 {
			if tile.Durability == nil {
				tile.Durability = map[string]int{}
			} else {
				copied := make(map[string]int, len(tile.Durability))
				for k, v := range tile.Durability {
					copied[k] = v
				}
				tile.Durability = copied
			}
			tile.Durability[id] = remaining
			w.grid.SetTile(tile)
			w.markDirtyLocked()
			return succeed(fmt.Sprintf("struck %s, %d durability left", id, remaining), map[string]any{"remaining": remaining})
		}
		tile.Resources = removeFirst(tile.Resources, id)
		tile.PlacedResources = removeFirst(tile.PlacedResources, id)
		if tile.Durability != nil {
			copied := make(map[string]int, len(tile.Durability))
			for k, v := range tile.Durability {
				copied[k] = v
			}
			delete(copied, id)
			tile.Durability = copied
		}
		w.grid.SetTile(tile)
		w.markDirtyLocked()
		return succeed("destroyed "+id, map[string]any{"destroyed": id})
	}
	return fail(CodeNotFound, "nothing durable to strike")
}

// Consume eats one unit of a consumable from the player's inventory,
// clamping health to [0, 100].
func (w *World) Consume(playerID, resourceID string) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[playerID]
	if !ok {
		return w.record(fail(CodeNotFound, "unknown player "+playerID))
	}
	res, ok := w.resources.Get(resourceID)
	if !ok {
		return w.record(fail(CodeNotFound, "unknown resource "+resourceID))
	}
	if !res.Consumable {
		return w.record(fail(CodeInvalidState, resourceID+" is not consumable"))
	}
	if !p.Inventory.Remove(resourceID) {
		return w.record(fail(CodeNotFound, "you are not holding "+resourceID))
	}
	p.Health += res.HealthGain
	p.ClampHealth()
	w.markDirtyLocked()
	return w.record(succeed(fmt.Sprintf("consumed %s, health now %d", resourceID, p.Health), map[string]any{"health": p.Health}))
}

func (w *World) inventoryOfLocked(actorID string) *economy.Inventory {
	if p, ok := w.players[actorID]; ok {
		return &p.Inventory
	}
	if a, ok := w.agents[actorID]; ok {
		return &a.Inventory
	}
	return nil
}

func removeFirst(list []string, id string) []string {
	for i, v := range list {
		if v == id {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}
