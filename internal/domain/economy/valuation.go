package economy

import "tilerealm/internal/domain/world"

// BaseTileValue is what an empty unclaimed tile is worth in coins.
const BaseTileValue = 10

// TileValue prices a tile: base value plus the coin value of everything
// sitting on it. Unknown resource ids contribute nothing.
func TileValue(t world.Tile, catalog Catalog) int {
	value := BaseTileValue
	for _, id := range t.Resources {
		if r, ok := catalog.Get(id); ok {
			value += r.CoinValue
		}
	}
	return value
}

type NetWorthReport struct {
	Coins            int `json:"coins"`
	InventoryValue   int `json:"inventory_value"`
	LandValue        int `json:"land_value"`
	NetWorth         int `json:"net_worth"`
	ClaimedTileCount int `json:"claimed_tile_count"`
}

// NetWorth aggregates a claimant's liquid coins, inventory value, and the
// value of every tile they hold.
func NetWorth(claimantID string, coins int, inv Inventory, catalog Catalog, grid *world.Grid) NetWorthReport {
	report := NetWorthReport{Coins: coins}
	for _, s := range inv.Slots {
		if s.Empty() {
			continue
		}
		if r, ok := catalog.Get(s.ResourceID); ok {
			report.InventoryValue += r.CoinValue * s.Quantity
		}
	}
	if grid != nil && claimantID != "" {
		for _, row := range grid.Rows {
			for _, t := range row {
				if t.ClaimedBy == claimantID {
					report.LandValue += TileValue(t, catalog)
					report.ClaimedTileCount++
				}
			}
		}
	}
	report.NetWorth = coins + report.InventoryValue + report.LandValue
	return report
}
