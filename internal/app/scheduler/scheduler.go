// Package scheduler drives the simulation: a periodic tick that runs
// bounded behavior passes and debounces persistence of the world.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"tilerealm/internal/app/behavior"
	"tilerealm/internal/app/ports"
	"tilerealm/internal/app/worldstate"
	"tilerealm/internal/domain/agent"
)

const (
	DefaultTickInterval     = time.Second
	DefaultNPCInterval      = 2 * time.Second
	DefaultStrangerInterval = 3 * time.Second
	DefaultSaveDebounce     = 5 * time.Second

	// MaxAgentsPerPass bounds the per-tick cost: each pass touches one
	// contiguous, randomly positioned window of the population. Past
	// this size an individual agent's cadence degrades with population,
	// which is the intended trade-off.
	MaxAgentsPerPass = 50
)

type Config struct {
	TickInterval     time.Duration
	NPCInterval      time.Duration
	StrangerInterval time.Duration
	SaveDebounce     time.Duration
	MaxAgentsPerPass int
	Rand             *rand.Rand
	Now              func() time.Time
	Log              *slog.Logger
}

// Stores bundles the persistence collaborators the debounced save writes
// through. Any of them may be nil. When Tx is set the whole save runs in
// one transaction, so a crash mid-save never leaves the map and the
// agents from different snapshots.
type Stores struct {
	Maps          ports.MapRepository
	Agents        ports.AgentRepository
	Players       ports.PlayerRepository
	Sovereignties ports.SovereigntyRepository
	Tx            ports.TxManager
}

type Scheduler struct {
	world  *worldstate.World
	engine *behavior.Engine
	stores Stores
	cfg    Config

	lastNPCPass      time.Time
	lastStrangerPass time.Time

	// Debounce state: pendingSave is armed by a dirty tick and fired
	// once saveAt passes without further arming.
	pendingSave bool
	saveAt      time.Time

	metrics ports.SimMetrics
}

func New(w *worldstate.World, engine *behavior.Engine, stores Stores, metrics ports.SimMetrics, cfg Config) *Scheduler {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.NPCInterval <= 0 {
		cfg.NPCInterval = DefaultNPCInterval
	}
	if cfg.StrangerInterval <= 0 {
		cfg.StrangerInterval = DefaultStrangerInterval
	}
	if cfg.SaveDebounce <= 0 {
		cfg.SaveDebounce = DefaultSaveDebounce
	}
	if cfg.MaxAgentsPerPass <= 0 {
		cfg.MaxAgentsPerPass = MaxAgentsPerPass
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	return &Scheduler{world: w, engine: engine, stores: stores, metrics: metrics, cfg: cfg}
}

// Run ticks until ctx is cancelled, then flushes any pending save. Passes
// run inline on this goroutine, so they can never overlap.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	s.cfg.Log.Info("scheduler started",
		"tick", s.cfg.TickInterval,
		"npc_interval", s.cfg.NPCInterval,
		"stranger_interval", s.cfg.StrangerInterval)
	for {
		select {
		case <-ctx.Done():
			s.flush(context.Background())
			s.cfg.Log.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs at most one behavior pass per population whose cadence has
// elapsed, then arms or fires the debounced save.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.cfg.Now()

	if now.Sub(s.lastNPCPass) >= s.cfg.NPCInterval {
		s.lastNPCPass = now
		s.runPass(agent.KindNPC)
	}
	if now.Sub(s.lastStrangerPass) >= s.cfg.StrangerInterval {
		s.lastStrangerPass = now
		s.runPass(agent.KindStranger)
	}

	if s.world.ConsumeDirty() {
		s.pendingSave = true
		s.saveAt = now.Add(s.cfg.SaveDebounce)
	}
	if s.pendingSave && !now.Before(s.saveAt) {
		s.save(ctx)
	}
}

func (s *Scheduler) runPass(kind agent.Kind) {
	n := s.world.PopulationSize(kind)
	if n == 0 {
		return
	}
	start := s.cfg.Rand.Intn(n)
	window := s.world.AgentWindow(kind, start, s.cfg.MaxAgentsPerPass)
	s.engine.RunPass(kind, window)
}

func (s *Scheduler) save(ctx context.Context) {
	s.pendingSave = false
	var err error
	if s.stores.Tx != nil {
		err = s.stores.Tx.RunInTx(ctx, s.writeWorld)
	} else {
		err = s.writeWorld(ctx)
	}
	if err != nil {
		s.cfg.Log.Error("save failed", "err", err)
		// Re-arm so the change is not lost.
		s.pendingSave = true
		s.saveAt = s.cfg.Now().Add(s.cfg.SaveDebounce)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordSave()
	}
}

func (s *Scheduler) writeWorld(ctx context.Context) error {
	if s.stores.Maps != nil {
		if err := s.stores.Maps.SaveMapData(ctx, s.world.GridSnapshot()); err != nil {
			return fmt.Errorf("save map: %w", err)
		}
	}
	if s.stores.Agents != nil {
		if err := s.stores.Agents.SaveAll(ctx, s.world.AgentSnapshots()); err != nil {
			return fmt.Errorf("save agents: %w", err)
		}
	}
	if s.stores.Players != nil {
		for _, p := range s.world.PlayerSnapshots() {
			if err := s.stores.Players.Save(ctx, playerToRecord(p)); err != nil {
				return fmt.Errorf("save player %s: %w", p.ID, err)
			}
		}
	}
	if s.stores.Sovereignties != nil {
		for _, sov := range s.world.SovereigntySnapshots() {
			if err := s.stores.Sovereignties.Save(ctx, sov); err != nil {
				return fmt.Errorf("save sovereignty %s: %w", sov.OwnerID, err)
			}
		}
	}
	return nil
}

// flush writes out a pending or dirty world immediately. Called on
// teardown so a debounce window in flight is not dropped.
func (s *Scheduler) flush(ctx context.Context) {
	if s.world.ConsumeDirty() {
		s.pendingSave = true
	}
	if s.pendingSave {
		s.save(ctx)
	}
}
