package worldstate

import (
	"sort"

	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/sovereign"
)

// CreateSovereignty founds a political entity for the owner. A claimant
// has at most one; founding a second fails with INVALID_STATE.
func (w *World) CreateSovereignty(ownerID, name, flag, motto string) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.sovereignties[ownerID]; exists {
		return w.record(fail(CodeInvalidState, "you already founded a sovereignty"))
	}
	s := sovereign.Sovereignty{
		OwnerID:   ownerID,
		Name:      name,
		Flag:      flag,
		Motto:     motto,
		FoundedAt: w.now(),
	}
	if err := s.Validate(); err != nil {
		return w.record(fail(CodeInvalidState, err.Error()))
	}
	w.sovereignties[ownerID] = s
	w.markDirtyLocked()
	return w.record(succeed("sovereignty "+name+" founded", map[string]any{"sovereignty": s}))
}

// UpdateSovereignty applies a partial owner-only mutation.
func (w *World) UpdateSovereignty(ownerID string, u sovereign.Update) Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, exists := w.sovereignties[ownerID]
	if !exists {
		return w.record(fail(CodeNotFound, "you have no sovereignty to update"))
	}
	w.sovereignties[ownerID] = s.Apply(u)
	w.markDirtyLocked()
	return w.record(succeed("sovereignty updated", map[string]any{"sovereignty": w.sovereignties[ownerID]}))
}

func (w *World) Sovereignty(ownerID string) (sovereign.Sovereignty, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, exists := w.sovereignties[ownerID]
	return s, exists
}

// Standings ranks every sovereignty by the aggregate value of its owner's
// claimed tiles, descending. Land held by synthetic (npc-/stranger-
// prefixed) claimants never contributes: only human sovereignties accrue
// value. The sort is stable, so ties keep insertion-scan order.
func (w *World) Standings() []sovereign.Standing {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.standingsLocked()
}

func (w *World) standingsLocked() []sovereign.Standing {
	values := map[string]int{}
	counts := map[string]int{}
	for _, row := range w.grid.Rows {
		for _, t := range row {
			owner := t.ClaimedBy
			if owner == "" || agent.IsSynthetic(owner) {
				continue
			}
			if _, founded := w.sovereignties[owner]; !founded {
				continue
			}
			values[owner] += economy.TileValue(t, w.resources)
			counts[owner]++
		}
	}

	out := make([]sovereign.Standing, 0, len(w.sovereignties))
	for owner, s := range w.sovereignties {
		if agent.IsSynthetic(owner) {
			continue
		}
		out = append(out, sovereign.Standing{
			OwnerID:    owner,
			Name:       s.Name,
			Flag:       s.Flag,
			TotalValue: values[owner],
			TileCount:  counts[owner],
		})
	}
	// Secondary key keeps the ordering deterministic across map iteration.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalValue != out[j].TotalValue {
			return out[i].TotalValue > out[j].TotalValue
		}
		return out[i].OwnerID < out[j].OwnerID
	})
	return out
}
