package worldstate

import (
	"fmt"

	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

// Claim assigns ownership of one tile to the player, charging its current
// value. Calling it twice on the same tile can never yield two claimants:
// the second call always fails with ALREADY_CLAIMED.
func (w *World) Claim(playerID string, x, y int) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.record(w.claimLocked(playerID, x, y))
}

func (w *World) claimLocked(claimantID string, x, y int) Outcome {
	pos, coins, ok := w.claimantLocked(claimantID)
	if !ok {
		return fail(CodeNotFound, "unknown claimant "+claimantID)
	}
	tile, ok := w.grid.At(x, y)
	if !ok {
		return fail(CodeNotFound, fmt.Sprintf("no tile at (%d,%d)", x, y))
	}
	if tile.IsClaimed() {
		return fail(CodeAlreadyClaimed, fmt.Sprintf("tile (%d,%d) is already claimed by %s", x, y, tile.ClaimedBy))
	}
	if world.Chebyshev(pos, world.Point{X: x, Y: y}) > ClaimRadius {
		return fail(CodeOutOfRange, fmt.Sprintf("tile (%d,%d) is out of claim range", x, y))
	}
	cost := economy.TileValue(tile, w.resources)
	if coins < cost {
		return fail(CodeInsufficientFunds, fmt.Sprintf("need %d coins to claim (%d,%d)", cost, x, y))
	}
	w.debitLocked(claimantID, cost)
	tile.ClaimedBy = claimantID
	w.grid.SetTile(tile)
	w.markDirtyLocked()
	return succeed(fmt.Sprintf("claimed (%d,%d) for %d coins", x, y, cost), map[string]any{"charged": cost})
}

// ClaimAll claims every tile in the list that individually passes the
// claim checks. It is not atomic: tiles that fail are skipped and the
// player is charged only for the ones that succeed.
func (w *World) ClaimAll(playerID string, tiles []world.Point) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	claimed := 0
	spent := 0
	skipped := 0
	for _, pt := range tiles {
		out := w.claimLocked(playerID, pt.X, pt.Y)
		if !out.Success {
			skipped++
			continue
		}
		claimed++
		if charged, ok := out.Data["charged"].(int); ok {
			spent += charged
		}
	}
	return w.record(succeed(
		fmt.Sprintf("claimed %d of %d tiles for %d coins", claimed, len(tiles), spent),
		map[string]any{"claimed": claimed, "spent": spent, "skipped": skipped},
	))
}

// NameTile sets the owner-visible label of a claimed tile. Only the claim
// owner may rename it.
func (w *World) NameTile(playerID string, x, y int, name string) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	tile, ok := w.grid.At(x, y)
	if !ok {
		return w.record(fail(CodeNotFound, fmt.Sprintf("no tile at (%d,%d)", x, y)))
	}
	if tile.ClaimedBy != playerID {
		return w.record(fail(CodeNotYours, fmt.Sprintf("tile (%d,%d) is not yours to name", x, y)))
	}
	tile.Name = name
	w.grid.SetTile(tile)
	w.markDirtyLocked()
	return w.record(succeed("tile named", nil))
}

// claimantLocked resolves a claimant's position and balance whether it is
// a player or an autonomous agent.
func (w *World) claimantLocked(id string) (world.Point, int, bool) {
	if p, ok := w.players[id]; ok {
		return p.Pos, p.Coins, true
	}
	if a, ok := w.agents[id]; ok {
		return a.Pos, a.Coins, true
	}
	return world.Point{}, 0, false
}

func (w *World) debitLocked(id string, amount int) {
	if p, ok := w.players[id]; ok {
		p.Coins -= amount
		return
	}
	if a, ok := w.agents[id]; ok {
		a.Coins -= amount
	}
}
