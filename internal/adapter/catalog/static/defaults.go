package staticcatalog

import (
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

func DefaultTileTypes() world.TileTypeCatalog {
	return world.TileTypeCatalog{
		world.TileGrass:    {Walkable: true, Label: "Grass", Color: "#6abe30"},
		world.TileForest:   {Walkable: true, Label: "Forest", Color: "#37946e"},
		world.TileMountain: {Walkable: false, Label: "Mountain", Color: "#8a8a8a"},
		world.TileSand:     {Walkable: true, Label: "Sand", Color: "#e8d27a"},
		world.TileDirt:     {Walkable: true, Label: "Dirt", Color: "#9b7653"},
		world.TileWater:    {Walkable: false, Label: "Water", Color: "#3978a8"},
	}
}

func DefaultResources() economy.Catalog {
	return economy.Catalog{
		"wood": {
			ID: "wood", Rarity: economy.RarityCommon, CoinValue: 2,
			SpawnTiles:  []world.TileKind{world.TileForest, world.TileGrass},
			SpawnChance: 0.25, Durability: 10,
		},
		"stone": {
			ID: "stone", Rarity: economy.RarityCommon, CoinValue: 3,
			SpawnTiles:  []world.TileKind{world.TileMountain, world.TileDirt},
			SpawnChance: 0.2, Durability: 20,
		},
		"berry": {
			ID: "berry", Rarity: economy.RarityCommon, CoinValue: 1,
			Consumable: true, HealthGain: 10,
			SpawnTiles:  []world.TileKind{world.TileGrass, world.TileForest},
			SpawnChance: 0.15,
		},
		"mushroom": {
			ID: "mushroom", Rarity: economy.RarityUncommon, CoinValue: 4,
			Consumable: true, HealthGain: 20,
			SpawnTiles:  []world.TileKind{world.TileForest, world.TileDirt},
			SpawnChance: 0.08,
		},
		"crystal": {
			ID: "crystal", Rarity: economy.RarityRare, CoinValue: 25,
			SpawnTiles:  []world.TileKind{world.TileMountain},
			SpawnChance: 0.03, Durability: 40,
		},
		"pickaxe": {
			ID: "pickaxe", Rarity: economy.RarityUncommon, CoinValue: 12,
			CanInflictDamage: true, Damage: 5,
			SpawnChance: 0,
		},
		"grass_seed": {
			ID: "grass_seed", Rarity: economy.RarityCommon, CoinValue: 1,
			ProducesTile: world.TileGrass,
			SpawnTiles:   []world.TileKind{world.TileGrass},
			SpawnChance:  0.05,
		},
	}
}
