// Package memory provides in-memory repository implementations matching
// the gorm adapters, used by tests and by DB-less local runs.
package memory

import (
	"context"
	"sync"

	"tilerealm/internal/app/ports"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/sovereign"
	"tilerealm/internal/domain/world"
)

type MapRepo struct {
	mu    sync.Mutex
	grid  *world.Grid
	Saves int
}

func NewMapRepo() *MapRepo {
	return &MapRepo{}
}

func (r *MapRepo) SaveMapData(_ context.Context, grid *world.Grid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grid = grid
	r.Saves++
	return nil
}

func (r *MapRepo) LoadMap(_ context.Context) (*world.Grid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.grid == nil {
		return nil, ports.ErrNotFound
	}
	return r.grid, nil
}

type AgentRepo struct {
	mu     sync.Mutex
	agents []agent.Agent
}

func NewAgentRepo() *AgentRepo {
	return &AgentRepo{}
}

func (r *AgentRepo) SaveAll(_ context.Context, agents []agent.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents = append([]agent.Agent{}, agents...)
	return nil
}

func (r *AgentRepo) ListAll(_ context.Context) ([]agent.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]agent.Agent{}, r.agents...), nil
}

type PlayerRepo struct {
	mu      sync.Mutex
	players map[string]ports.PlayerRecord
}

func NewPlayerRepo() *PlayerRepo {
	return &PlayerRepo{players: map[string]ports.PlayerRecord{}}
}

func (r *PlayerRepo) GetByPlayerID(_ context.Context, playerID string) (ports.PlayerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.players[playerID]
	if !ok {
		return ports.PlayerRecord{}, ports.ErrNotFound
	}
	return rec, nil
}

func (r *PlayerRepo) Save(_ context.Context, record ports.PlayerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[record.PlayerID] = record
	return nil
}

func (r *PlayerRepo) ListAll(_ context.Context) ([]ports.PlayerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ports.PlayerRecord, 0, len(r.players))
	for _, rec := range r.players {
		out = append(out, rec)
	}
	return out, nil
}

type SovereigntyRepo struct {
	mu   sync.Mutex
	byID map[string]sovereign.Sovereignty
}

func NewSovereigntyRepo() *SovereigntyRepo {
	return &SovereigntyRepo{byID: map[string]sovereign.Sovereignty{}}
}

func (r *SovereigntyRepo) GetByOwnerID(_ context.Context, ownerID string) (sovereign.Sovereignty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[ownerID]
	if !ok {
		return sovereign.Sovereignty{}, ports.ErrNotFound
	}
	return s, nil
}

func (r *SovereigntyRepo) Save(_ context.Context, s sovereign.Sovereignty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.OwnerID] = s
	return nil
}

func (r *SovereigntyRepo) ListAll(_ context.Context) ([]sovereign.Sovereignty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sovereign.Sovereignty, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}
