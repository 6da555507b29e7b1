package data

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSpawnTables(t *testing.T) {
	tables, err := DefaultSpawnTables()
	if err != nil {
		t.Fatalf("default tables: %v", err)
	}

	if got := tables.MaxMonsters.ValueAt(1); got != 2 {
		t.Errorf("expected 2 monsters per room at depth 1, got %d", got)
	}
	if got := tables.MaxMonsters.ValueAt(6); got != 5 {
		t.Errorf("expected 5 monsters per room at depth 6, got %d", got)
	}
	if got := tables.MaxItems.ValueAt(4); got != 2 {
		t.Errorf("expected 2 items per room at depth 4, got %d", got)
	}

	troll, ok := tables.GetMonster("troll")
	if !ok {
		t.Fatal("troll template missing")
	}
	if troll.Weight.ValueAt(2) != 0 || troll.Weight.ValueAt(3) != 15 || troll.Weight.ValueAt(9) != 60 {
		t.Errorf("unexpected troll weights %+v", troll.Weight)
	}

	heal, ok := tables.GetItem("healing_potion")
	if !ok {
		t.Fatal("healing potion template missing")
	}
	for depth := 0; depth < 20; depth++ {
		if heal.Weight.ValueAt(depth) != 35 {
			t.Fatalf("healing potion weight at depth %d = %d", depth, heal.Weight.ValueAt(depth))
		}
	}

	sword, ok := tables.GetItem("sword")
	if !ok || sword.Equipment == nil {
		t.Fatal("sword should be equipment")
	}
	if sword.Equipment.Slot != "right_hand" || sword.Equipment.PowerBonus != 3 {
		t.Errorf("unexpected sword equipment %+v", sword.Equipment)
	}
	if _, ok := tables.GetItem("missing"); ok {
		t.Error("unknown item reported as present")
	}
}

func TestParseSpawnTablesErrors(t *testing.T) {
	const validMonster = `
  - id: orc
    name: orc
    glyph: "o"
    health: 10
    weight: {default: 80}
`
	const validItem = `
  - id: potion
    name: potion
    glyph: "!"
    kind: heal
    weight: {default: 35}
`

	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{
			name:        "malformed yaml",
			yamlContent: "monsters: [",
			errContains: "failed to parse spawn tables YAML",
		},
		{
			name:        "no monsters",
			yamlContent: "items:" + validItem,
			errContains: "monsters cannot be empty",
		},
		{
			name:        "no items",
			yamlContent: "monsters:" + validMonster,
			errContains: "items cannot be empty",
		},
		{
			name: "unordered cap table",
			yamlContent: `
maxMonsters:
  steps:
    - {level: 4, value: 3}
    - {level: 1, value: 2}
monsters:` + validMonster + "items:" + validItem,
			errContains: "maxMonsters",
		},
		{
			name: "duplicate id",
			yamlContent: "monsters:" + validMonster + `
  - id: orc
    name: other orc
    glyph: "O"
    health: 5
    weight: {default: 1}
items:` + validItem,
			errContains: "duplicate template ID 'orc'",
		},
		{
			name: "multi character glyph",
			yamlContent: `
monsters:
  - id: orc
    name: orc
    glyph: "oo"
    health: 10
    weight: {default: 80}
items:` + validItem,
			errContains: "single character",
		},
		{
			name: "no item baseline",
			yamlContent: "monsters:" + validMonster + `
items:
  - id: scroll
    name: scroll
    glyph: "#"
    kind: lightning
    weight:
      steps:
        - {level: 4, value: 25}
`,
			errContains: "no item keeps a positive weight",
		},
		{
			name: "negative weight",
			yamlContent: "monsters:" + validMonster + `
items:` + validItem + `
  - id: cursed
    name: cursed
    glyph: "?"
    kind: curse
    weight: {default: -1}
`,
			errContains: "negative weight",
		},
		{
			name: "equipment without slot",
			yamlContent: "monsters:" + validMonster + `
items:` + validItem + `
  - id: ring
    name: ring
    glyph: "="
    kind: ring
    equipment: {powerBonus: 1}
    weight: {default: 1}
`,
			errContains: "missing slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpawnTables([]byte(tt.yamlContent))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %v", tt.errContains, err)
			}
		})
	}
}

func TestParseSpawnTablesValidationSentinel(t *testing.T) {
	_, err := ParseSpawnTables([]byte("items: []\nmonsters: []\n"))
	if !errors.Is(err, ErrInvalidSpawnTables) {
		t.Fatalf("expected ErrInvalidSpawnTables, got %v", err)
	}
}

func TestLoadSpawnTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")
	if err := os.WriteFile(path, defaultSpawnTables, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tables, err := LoadSpawnTables(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tables.Monsters) != 2 || len(tables.Items) != 6 {
		t.Errorf("unexpected template counts: %d monsters, %d items", len(tables.Monsters), len(tables.Items))
	}

	if _, err := LoadSpawnTables(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#7f00ff", color.RGBA{127, 0, 255, 255}},
		{"#00BFFF", color.RGBA{0, 191, 255, 255}},
		{"#zzzzzz", color.RGBA{255, 255, 255, 255}},
		{"", color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		if got := ParseHexColor(tt.in); got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGlyphRune(t *testing.T) {
	if GlyphRune("T") != 'T' {
		t.Error("unexpected glyph rune")
	}
}
