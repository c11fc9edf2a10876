// Package staticcatalog serves the resource and terrain catalogs from YAML
// files, falling back to built-in defaults when no files are configured.
package staticcatalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tilerealm/internal/domain/economy"
	"tilerealm/internal/domain/world"
)

type Provider struct {
	resources economy.Catalog
	tileTypes world.TileTypeCatalog
}

// Load reads the catalogs from the given paths. Either path may be empty,
// in which case the built-in defaults are used for that catalog.
func Load(resourcesPath, tileTypesPath string) (*Provider, error) {
	p := &Provider{
		resources: DefaultResources(),
		tileTypes: DefaultTileTypes(),
	}
	if resourcesPath != "" {
		var entries []economy.Resource
		if err := readYAML(resourcesPath, &entries); err != nil {
			return nil, fmt.Errorf("load resource catalog: %w", err)
		}
		catalog := economy.Catalog{}
		for _, r := range entries {
			if r.ID == "" {
				return nil, fmt.Errorf("load resource catalog: entry without id in %s", resourcesPath)
			}
			catalog[r.ID] = r
		}
		p.resources = catalog
	}
	if tileTypesPath != "" {
		types := world.TileTypeCatalog{}
		if err := readYAML(tileTypesPath, &types); err != nil {
			return nil, fmt.Errorf("load tile type catalog: %w", err)
		}
		p.tileTypes = types
	}
	return p, nil
}

func readYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func (p *Provider) Resources() economy.Catalog {
	return p.resources
}

func (p *Provider) TileTypes() world.TileTypeCatalog {
	return p.tileTypes
}
