package ports

import (
	"context"

	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/sovereign"
	"tilerealm/internal/domain/world"
)

// MapRepository is the persistence collaborator for the grid. SaveMapData
// is invoked debounced by the scheduler; the only guarantee callers get is
// that it is eventually called with the latest grid.
type MapRepository interface {
	SaveMapData(ctx context.Context, grid *world.Grid) error
	LoadMap(ctx context.Context) (*world.Grid, error)
}

// PlayerRecord is the persisted shape of an embodied claimant.
type PlayerRecord struct {
	PlayerID  string
	X         int
	Y         int
	Facing    string
	Health    int
	Coins     int
	Inventory string // JSON-encoded slots
}

type PlayerRepository interface {
	GetByPlayerID(ctx context.Context, playerID string) (PlayerRecord, error)
	Save(ctx context.Context, record PlayerRecord) error
	ListAll(ctx context.Context) ([]PlayerRecord, error)
}

type AgentRepository interface {
	SaveAll(ctx context.Context, agents []agent.Agent) error
	ListAll(ctx context.Context) ([]agent.Agent, error)
}

type SovereigntyRepository interface {
	GetByOwnerID(ctx context.Context, ownerID string) (sovereign.Sovereignty, error)
	Save(ctx context.Context, s sovereign.Sovereignty) error
	ListAll(ctx context.Context) ([]sovereign.Sovereignty, error)
}
