package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tilerealm/internal/adapter/repo/gorm/model"
	"tilerealm/internal/app/ports"
	"tilerealm/internal/domain/sovereign"
)

type SovereigntyRepo struct {
	db *gorm.DB
}

func NewSovereigntyRepo(db *gorm.DB) SovereigntyRepo {
	return SovereigntyRepo{db: db}
}

func (r SovereigntyRepo) GetByOwnerID(ctx context.Context, ownerID string) (sovereign.Sovereignty, error) {
	var m model.Sovereignty
	if err := getDBFromCtx(ctx, r.db).Where("owner_id = ?", ownerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sovereign.Sovereignty{}, ports.ErrNotFound
		}
		return sovereign.Sovereignty{}, err
	}
	return sovereignFromModel(m), nil
}

func (r SovereigntyRepo) Save(ctx context.Context, s sovereign.Sovereignty) error {
	m := model.Sovereignty{
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		Flag:      s.Flag,
		Motto:     s.Motto,
		FoundedAt: s.FoundedAt,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		UpdateAll: true,
	}).Create(&m).Error
}

func (r SovereigntyRepo) ListAll(ctx context.Context) ([]sovereign.Sovereignty, error) {
	var ms []model.Sovereignty
	if err := getDBFromCtx(ctx, r.db).Order("founded_at").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]sovereign.Sovereignty, 0, len(ms))
	for _, m := range ms {
		out = append(out, sovereignFromModel(m))
	}
	return out, nil
}

func sovereignFromModel(m model.Sovereignty) sovereign.Sovereignty {
	return sovereign.Sovereignty{
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Flag:      m.Flag,
		Motto:     m.Motto,
		FoundedAt: m.FoundedAt,
	}
}
