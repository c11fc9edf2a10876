package behavior

import (
	"log/slog"
	"testing"
	"time"

	"tilerealm/internal/app/worldstate"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

var fixedNow = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

type metricsStub struct {
	outcomes    []string
	passes      map[string]int
	agentErrors int
	saves       int
}

func (m *metricsStub) RecordOutcome(code string) { m.outcomes = append(m.outcomes, code) }
func (m *metricsStub) RecordPass(population string, agents int) {
	if m.passes == nil {
		m.passes = map[string]int{}
	}
	m.passes[population] += agents
}
func (m *metricsStub) RecordAgentError(string) { m.agentErrors++ }
func (m *metricsStub) RecordSave()             { m.saves++ }

func testCatalog() economy.Catalog {
	return economy.Catalog{
		"wood":    {ID: "wood", CoinValue: 2},
		"crystal": {ID: "crystal", CoinValue: 25},
		"berry":   {ID: "berry", CoinValue: 3, Consumable: true, HealthGain: 20},
	}
}

func testTileTypes() world.TileTypeCatalog {
	return world.TileTypeCatalog{
		world.TileGrass: {Walkable: true},
		world.TileWater: {Walkable: false},
	}
}

// testWorld builds a 10x10 grass world containing one agent of the given
// kind at (5,5).
func testWorld(t *testing.T, kind agent.Kind) (*worldstate.World, *agent.Agent) {
	t.Helper()
	prefix := agent.NPCIDPrefix
	coins := 0
	if kind == agent.KindNPC {
		coins = agent.NPCStartingCoins
	} else {
		prefix = agent.StrangerIDPrefix
	}
	a := &agent.Agent{
		ID:        prefix + "test",
		Kind:      kind,
		Pos:       world.Point{X: 5, Y: 5},
		Facing:    world.DirSouth,
		Health:    100,
		Coins:     coins,
		Inventory: economy.NewInventory(economy.DefaultInventorySlots),
	}
	w := worldstate.New(worldstate.Config{
		Grid:      world.NewGrid(10, 10, world.TileGrass),
		Agents:    []*agent.Agent{a},
		Resources: testCatalog(),
		TileTypes: testTileTypes(),
		Now:       fixedNow,
	})
	return w, a
}

// scriptedEngine returns an engine whose Roll pops the given values in
// order and fails the test if the policy draws more than scripted.
func scriptedEngine(t *testing.T, w *worldstate.World, rolls ...float64) *Engine {
	t.Helper()
	i := 0
	return &Engine{
		World: w,
		Log:   slog.Default(),
		Roll: func() float64 {
			if i >= len(rolls) {
				t.Fatalf("policy drew roll %d, only %d scripted", i+1, len(rolls))
			}
			v := rolls[i]
			i++
			return v
		},
		PickN: func(int) int { return 0 },
		Now:   fixedNow,
	}
}

func TestRunPassContainsAgentPanics(t *testing.T) {
	w, a := testWorld(t, agent.KindNPC)
	m := &metricsStub{}
	e := &Engine{
		World:   w,
		Metrics: m,
		Log:     slog.Default(),
		Roll:    func() float64 { panic("corrupt agent") },
		PickN:   func(int) int { return 0 },
		Now:     fixedNow,
	}
	e.RunPass(agent.KindNPC, []string{a.ID})
	if m.agentErrors != 1 {
		t.Errorf("agentErrors = %d, want 1", m.agentErrors)
	}
	if m.passes["npc"] != 1 {
		t.Errorf("passes[npc] = %d, want 1", m.passes["npc"])
	}
}

func TestRunPassSkipsUnknownAgents(t *testing.T) {
	w, _ := testWorld(t, agent.KindNPC)
	m := &metricsStub{}
	e := scriptedEngine(t, w)
	e.Metrics = m
	e.RunPass(agent.KindNPC, []string{"ghost"})
	if m.agentErrors != 0 {
		t.Errorf("agentErrors = %d, want 0", m.agentErrors)
	}
}
