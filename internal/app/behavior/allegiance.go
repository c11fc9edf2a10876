package behavior

import (
	"tilerealm/internal/domain/agent"
)

// evaluateAllegiance is the greedy single-sovereignty attractor. The top
// sovereignty by territorial value pulls on the stranger with probability
// proportional to its wealth, capped; a poor top sovereignty attracts
// nobody but may shake loose an existing pledge.
func (e *Engine) evaluateAllegiance(a agent.Agent) {
	standings := e.World.Standings()
	if len(standings) == 0 {
		return
	}
	top := standings[0]

	if top.TotalValue < agent.AllegianceMinValue {
		if a.Allegiance != nil && e.Roll() < agent.AllegianceDropChance {
			e.World.SetAllegiance(a.ID, nil)
		}
		return
	}

	if a.Allegiance != nil && a.Allegiance.OwnerID == top.OwnerID {
		return
	}

	if e.Roll() < AttractionChance(top.TotalValue) {
		e.World.SetAllegiance(a.ID, &agent.Allegiance{
			OwnerID:     top.OwnerID,
			Sovereignty: top.Name,
			Flag:        top.Flag,
			PledgedAt:   e.Now(),
		})
	}
}

// AttractionChance maps a sovereignty's territorial value to a pledge
// probability: monotonically non-decreasing, capped at the maximum.
func AttractionChance(totalValue int) float64 {
	p := float64(totalValue) / agent.AllegianceValueDivisor
	if p > agent.AllegianceMaxChance {
		return agent.AllegianceMaxChance
	}
	if p < 0 {
		return 0
	}
	return p
}
