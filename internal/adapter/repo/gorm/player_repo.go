package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tilerealm/internal/adapter/repo/gorm/model"
	"tilerealm/internal/app/ports"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) GetByPlayerID(ctx context.Context, playerID string) (ports.PlayerRecord, error) {
	var m model.PlayerState
	if err := getDBFromCtx(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.PlayerRecord{}, ports.ErrNotFound
		}
		return ports.PlayerRecord{}, err
	}
	return playerFromModel(m), nil
}

func (r PlayerRepo) Save(ctx context.Context, record ports.PlayerRecord) error {
	m := model.PlayerState{
		PlayerID:  record.PlayerID,
		X:         record.X,
		Y:         record.Y,
		Facing:    record.Facing,
		Health:    record.Health,
		Coins:     record.Coins,
		Inventory: record.Inventory,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		UpdateAll: true,
	}).Create(&m).Error
}

func (r PlayerRepo) ListAll(ctx context.Context) ([]ports.PlayerRecord, error) {
	var ms []model.PlayerState
	if err := getDBFromCtx(ctx, r.db).Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]ports.PlayerRecord, 0, len(ms))
	for _, m := range ms {
		out = append(out, playerFromModel(m))
	}
	return out, nil
}

func playerFromModel(m model.PlayerState) ports.PlayerRecord {
	return ports.PlayerRecord{
		PlayerID:  m.PlayerID,
		X:         m.X,
		Y:         m.Y,
		Facing:    m.Facing,
		Health:    m.Health,
		Coins:     m.Coins,
		Inventory: m.Inventory,
	}
}
