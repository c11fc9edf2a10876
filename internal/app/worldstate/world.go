package worldstate

import (
	"sync"
	"time"

	"tilerealm/internal/app/ports"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/sovereign"
	"tilerealm/internal/domain/world"
)

// ClaimRadius is the Chebyshev distance a claimant may reach from its
// current position.
const ClaimRadius = 6

// World owns all mutable simulation state. Every mutation, whether it
// arrives from the player HTTP path or from the scheduler's behavior
// passes, goes through its mutex, so the two paths can never observe or
// produce a half-applied change.
type World struct {
	mu            sync.Mutex
	grid          *world.Grid
	players       map[string]*agent.Player
	agents        map[string]*agent.Agent
	npcOrder      []string
	strangerOrder []string
	sovereignties map[string]sovereign.Sovereignty

	resources economy.Catalog
	tileTypes world.TileTypeCatalog
	metrics   ports.SimMetrics
	now       func() time.Time

	dirty bool
}

type Config struct {
	Grid          *world.Grid
	Players       []*agent.Player
	Agents        []*agent.Agent
	Sovereignties []sovereign.Sovereignty
	Resources     economy.Catalog
	TileTypes     world.TileTypeCatalog
	Metrics       ports.SimMetrics
	Now           func() time.Time
}

func New(cfg Config) *World {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	w := &World{
		grid:          cfg.Grid,
		players:       map[string]*agent.Player{},
		agents:        map[string]*agent.Agent{},
		sovereignties: map[string]sovereign.Sovereignty{},
		resources:     cfg.Resources,
		tileTypes:     cfg.TileTypes,
		metrics:       cfg.Metrics,
		now:           cfg.Now,
	}
	if w.grid == nil {
		w.grid = world.NewGrid(0, 0, world.TileGrass)
	}
	for _, p := range cfg.Players {
		w.players[p.ID] = p
	}
	for _, a := range cfg.Agents {
		w.addAgentLocked(a)
	}
	for _, s := range cfg.Sovereignties {
		w.sovereignties[s.OwnerID] = s
	}
	return w
}

func (w *World) addAgentLocked(a *agent.Agent) {
	w.agents[a.ID] = a
	switch a.Kind {
	case agent.KindStranger:
		w.strangerOrder = append(w.strangerOrder, a.ID)
	default:
		w.npcOrder = append(w.npcOrder, a.ID)
	}
}

// AddPlayer registers an embodied claimant, keeping an existing record if
// the id is already known.
func (w *World) AddPlayer(p *agent.Player) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.players[p.ID]; !exists {
		w.players[p.ID] = p
	}
}

func (w *World) markDirtyLocked() {
	w.dirty = true
}

// ConsumeDirty reports whether any mutation happened since the last call
// and resets the flag. The scheduler uses it to arm the debounced save.
func (w *World) ConsumeDirty() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.dirty
	w.dirty = false
	return d
}

func (w *World) record(out Outcome) Outcome {
	if w.metrics != nil {
		w.metrics.RecordOutcome(string(out.Code))
	}
	return out
}

// GridSnapshot returns the live grid. Rows are copy-on-write: mutation
// replaces whole rows, so a caller iterating a row it already holds never
// sees a partial update. Callers must not write through it.
func (w *World) GridSnapshot() *world.Grid {
	w.mu.Lock()
	defer w.mu.Unlock()
	g := &world.Grid{Width: w.grid.Width, Height: w.grid.Height, Rows: make([][]world.Tile, len(w.grid.Rows))}
	copy(g.Rows, w.grid.Rows)
	return g
}

func (w *World) TileAt(x, y int) (world.Tile, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.At(x, y)
}

func (w *World) NeighborTiles(x, y int) []world.Tile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.Neighbors4(x, y)
}

func (w *World) ResourceCatalog() economy.Catalog {
	return w.resources
}

func (w *World) TileTypes() world.TileTypeCatalog {
	return w.tileTypes
}

func (w *World) PlayerSnapshot(playerID string) (agent.Player, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[playerID]
	if !ok {
		return agent.Player{}, false
	}
	return *p, true
}

func (w *World) PlayerSnapshots() []agent.Player {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]agent.Player, 0, len(w.players))
	for _, p := range w.players {
		out = append(out, *p)
	}
	return out
}

func (w *World) AgentSnapshot(id string) (agent.Agent, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, ok := w.agents[id]
	if !ok {
		return agent.Agent{}, false
	}
	return *a, true
}

func (w *World) AgentSnapshots() []agent.Agent {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]agent.Agent, 0, len(w.agents))
	for _, id := range w.npcOrder {
		out = append(out, *w.agents[id])
	}
	for _, id := range w.strangerOrder {
		out = append(out, *w.agents[id])
	}
	return out
}

// AgentWindow returns a contiguous window of agent ids of one kind,
// wrapping around the population. Window size is capped at max; the
// caller supplies the start offset.
func (w *World) AgentWindow(kind agent.Kind, start, max int) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	order := w.npcOrder
	if kind == agent.KindStranger {
		order = w.strangerOrder
	}
	n := len(order)
	if n == 0 || max <= 0 {
		return nil
	}
	if max > n {
		max = n
	}
	start = ((start % n) + n) % n
	out := make([]string, 0, max)
	for i := 0; i < max; i++ {
		out = append(out, order[(start+i)%n])
	}
	return out
}

func (w *World) PopulationSize(kind agent.Kind) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if kind == agent.KindStranger {
		return len(w.strangerOrder)
	}
	return len(w.npcOrder)
}

func (w *World) SovereigntySnapshots() []sovereign.Sovereignty {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]sovereign.Sovereignty, 0, len(w.sovereignties))
	for _, s := range w.sovereignties {
		out = append(out, s)
	}
	return out
}

// NetWorth reports a claimant's aggregate wealth: players by their wallet
// and inventory, agents likewise.
func (w *World) NetWorth(claimantID string) (economy.NetWorthReport, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[claimantID]; ok {
		return economy.NetWorth(p.ID, p.Coins, p.Inventory, w.resources, w.grid), true
	}
	if a, ok := w.agents[claimantID]; ok {
		return economy.NetWorth(a.ID, a.Coins, a.Inventory, w.resources, w.grid), true
	}
	return economy.NetWorthReport{}, false
}
