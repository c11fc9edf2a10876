package ports

import (
	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

// ResourceCatalogProvider hands out the read-only resource definitions.
// Implementations must return a catalog that stays stable for the lifetime
// of a simulation pass.
type ResourceCatalogProvider interface {
	Resources() economy.Catalog
}

// TileTypeProvider hands out the terrain catalog used for movement
// legality and display metadata.
type TileTypeProvider interface {
	TileTypes() world.TileTypeCatalog
}
