package gormrepo

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tilerealm/internal/adapter/repo/gorm/model"
	"tilerealm/internal/domain/agent"
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

type AgentRepo struct {
	db *gorm.DB
}

func NewAgentRepo(db *gorm.DB) AgentRepo {
	return AgentRepo{db: db}
}

func (r AgentRepo) SaveAll(ctx context.Context, agents []agent.Agent) error {
	if len(agents) == 0 {
		return nil
	}
	rows := make([]model.AgentState, 0, len(agents))
	for _, a := range agents {
		rows = append(rows, agentToModel(a))
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "agent_id"}},
		UpdateAll: true,
	}).CreateInBatches(rows, 200).Error
}

func (r AgentRepo) ListAll(ctx context.Context) ([]agent.Agent, error) {
	var ms []model.AgentState
	if err := getDBFromCtx(ctx, r.db).Order("agent_id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]agent.Agent, 0, len(ms))
	for _, m := range ms {
		out = append(out, agentFromModel(m))
	}
	return out, nil
}

func agentToModel(a agent.Agent) model.AgentState {
	m := model.AgentState{
		AgentID:      a.ID,
		Kind:         string(a.Kind),
		X:            a.Pos.X,
		Y:            a.Pos.Y,
		Facing:       string(a.Facing),
		Health:       a.Health,
		Coins:        a.Coins,
		Inventory:    marshalJSON(a.Inventory.Slots),
		LastActionAt: a.LastActionAt,
	}
	if a.Allegiance != nil {
		m.Allegiance = marshalJSON(a.Allegiance)
	}
	return m
}

func agentFromModel(m model.AgentState) agent.Agent {
	a := agent.Agent{
		ID:           m.AgentID,
		Kind:         agent.Kind(m.Kind),
		Pos:          world.Point{X: m.X, Y: m.Y},
		Facing:       world.Direction(m.Facing),
		Health:       m.Health,
		Coins:        m.Coins,
		Inventory:    economy.NewInventory(economy.DefaultInventorySlots),
		LastActionAt: m.LastActionAt,
	}
	var slots []economy.Slot
	unmarshalJSON(m.Inventory, &slots)
	if len(slots) > 0 {
		a.Inventory = economy.Inventory{Slots: slots}
	}
	if m.Allegiance != "" {
		var pledge agent.Allegiance
		if err := json.Unmarshal([]byte(m.Allegiance), &pledge); err == nil {
			a.Allegiance = &pledge
		}
	}
	return a
}
