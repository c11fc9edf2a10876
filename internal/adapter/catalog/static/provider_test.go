package staticcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"tilerealm/internal/domain/world"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	p, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := p.Resources().Get("wood"); !ok {
		t.Error("default resources missing wood")
	}
	if tt, ok := p.TileTypes()[world.TileWater]; !ok || tt.Walkable {
		t.Error("default tile types should mark water unwalkable")
	}
}

func TestLoadReadsYAMLFiles(t *testing.T) {
	dir := t.TempDir()
	resPath := filepath.Join(dir, "resources.yaml")
	typesPath := filepath.Join(dir, "tiletypes.yaml")

	resYAML := `
- id: iron
  rarity: rare
  coin_value: 30
  spawn_tiles: [mountain]
  spawn_chance: 0.05
`
	typesYAML := `
grass:
  walkable: true
  label: Grass
lava:
  walkable: false
  label: Lava
`
	if err := os.WriteFile(resPath, []byte(resYAML), 0o644); err != nil {
		t.Fatalf("write resources: %v", err)
	}
	if err := os.WriteFile(typesPath, []byte(typesYAML), 0o644); err != nil {
		t.Fatalf("write tile types: %v", err)
	}

	p, err := Load(resPath, typesPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	iron, ok := p.Resources().Get("iron")
	if !ok || iron.CoinValue != 30 || !iron.SpawnsOn(world.TileMountain) {
		t.Fatalf("iron entry = %+v, ok=%v", iron, ok)
	}
	// A file-backed catalog replaces the defaults wholesale.
	if _, ok := p.Resources().Get("wood"); ok {
		t.Error("defaults leaked into a file-backed catalog")
	}
	if tt, ok := p.TileTypes()["lava"]; !ok || tt.Walkable {
		t.Errorf("lava = %+v, ok=%v", tt, ok)
	}
}

func TestLoadRejectsEntriesWithoutID(t *testing.T) {
	dir := t.TempDir()
	resPath := filepath.Join(dir, "resources.yaml")
	if err := os.WriteFile(resPath, []byte("- coin_value: 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(resPath, ""); err == nil {
		t.Fatal("Load should reject a resource entry without an id")
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Fatal("Load should surface a missing file")
	}
}
