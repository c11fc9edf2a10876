package gormrepo

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tilerealm/internal/adapter/repo/gorm/model"
	"tilerealm/internal/app/ports"
	"tilerealm/internal/domain/world"
)

type MapRepo struct {
	db *gorm.DB
}

func NewMapRepo(db *gorm.DB) MapRepo {
	return MapRepo{db: db}
}

// SaveMapData upserts the whole grid in one transaction. It is the
// debounced save target, so it is called with the latest grid only.
func (r MapRepo) SaveMapData(ctx context.Context, grid *world.Grid) error {
	if grid == nil {
		return nil
	}
	rows := make([]model.MapTile, 0, grid.Width*grid.Height)
	for _, gridRow := range grid.Rows {
		for _, t := range gridRow {
			rows = append(rows, tileToModel(t))
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return getDBFromCtx(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "x"}, {Name: "y"}},
			UpdateAll: true,
		}).CreateInBatches(rows, 500).Error
	})
}

// LoadMap rebuilds the grid from stored tiles. Returns ports.ErrNotFound
// when no map has ever been saved.
func (r MapRepo) LoadMap(ctx context.Context) (*world.Grid, error) {
	var rows []model.MapTile
	if err := getDBFromCtx(ctx, r.db).Order("y, x").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	width, height := 0, 0
	for _, m := range rows {
		if m.X+1 > width {
			width = m.X + 1
		}
		if m.Y+1 > height {
			height = m.Y + 1
		}
	}
	grid := world.NewGrid(width, height, world.TileGrass)
	for _, m := range rows {
		grid.Rows[m.Y][m.X] = tileFromModel(m)
	}
	return grid, nil
}

func tileToModel(t world.Tile) model.MapTile {
	return model.MapTile{
		X:               t.X,
		Y:               t.Y,
		Kind:            string(t.Kind),
		ClaimedBy:       t.ClaimedBy,
		Name:            t.Name,
		Resources:       marshalJSON(t.Resources),
		PlacedResources: marshalJSON(t.PlacedResources),
		Durability:      marshalJSON(t.Durability),
		Walkable:        t.Walkable,
	}
}

func tileFromModel(m model.MapTile) world.Tile {
	t := world.Tile{
		X:         m.X,
		Y:         m.Y,
		Kind:      world.TileKind(m.Kind),
		ClaimedBy: m.ClaimedBy,
		Name:      m.Name,
		Walkable:  m.Walkable,
	}
	unmarshalJSON(m.Resources, &t.Resources)
	unmarshalJSON(m.PlacedResources, &t.PlacedResources)
	unmarshalJSON(m.Durability, &t.Durability)
	return t
}

func marshalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func unmarshalJSON(s string, out any) {
	if s == "" || s == "null" {
		return
	}
	_ = json.Unmarshal([]byte(s), out)
}
