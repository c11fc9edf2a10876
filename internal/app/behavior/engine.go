// Package behavior implements the autonomous decision policies that drive
// NPCs and Strangers between player actions.
package behavior

import (
	"log/slog"
	"math/rand"
	"time"

	"tilerealm/internal/app/ports"
	"tilerealm/internal/app/worldstate"
	"tilerealm/internal/domain/agent"
)

type Engine struct {
	World   *worldstate.World
	Metrics ports.SimMetrics
	Log     *slog.Logger

	// Roll draws uniform [0, 1); PickN draws uniform [0, n). Injected so
	// tests can force any branch.
	Roll  func() float64
	PickN func(n int) int
	Now   func() time.Time
}

func NewEngine(w *worldstate.World, metrics ports.SimMetrics, log *slog.Logger, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		World:   w,
		Metrics: metrics,
		Log:     log,
		Roll:    rng.Float64,
		PickN:   rng.Intn,
		Now:     time.Now,
	}
}

// RunPass evaluates the policy once for every agent id in the window. A
// panic while processing one agent is contained to that agent so a single
// corrupt record cannot starve the rest of the population.
func (e *Engine) RunPass(kind agent.Kind, ids []string) {
	for _, id := range ids {
		e.stepAgent(kind, id)
	}
	if e.Metrics != nil {
		e.Metrics.RecordPass(string(kind), len(ids))
	}
}

func (e *Engine) stepAgent(kind agent.Kind, id string) {
	defer func() {
		if r := recover(); r != nil {
			if e.Metrics != nil {
				e.Metrics.RecordAgentError(string(kind))
			}
			e.Log.Error("agent step panicked", "agent", id, "panic", r)
		}
	}()

	a, ok := e.World.AgentSnapshot(id)
	if !ok {
		return
	}
	switch a.Kind {
	case agent.KindStranger:
		e.stepStranger(a)
	default:
		e.stepNPC(a)
	}
}
