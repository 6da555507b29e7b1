package data

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed spawn_tables.yaml
var defaultSpawnTables []byte

// ErrInvalidSpawnTables is wrapped by every spawn table validation failure
var ErrInvalidSpawnTables = errors.New("invalid spawn tables")

// MonsterTemplate describes a monster species and its spawn weight by depth
type MonsterTemplate struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"` // Single character drawn for the monster
	Color string `yaml:"color"` // Color in hex format (e.g. "#00FF00")

	// Stats
	Health  int `yaml:"health"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
	XP      int `yaml:"xp"` // XP awarded when killed

	// Behavior
	AIType  string `yaml:"aiType"`
	OnDeath string `yaml:"onDeath"`
	Blocks  bool   `yaml:"blocks"`

	Weight LevelTable `yaml:"weight"`
}

// EquipmentTemplate holds the slot and bonuses of a wearable item
type EquipmentTemplate struct {
	Slot         string `yaml:"slot"`
	MaxHPBonus   int    `yaml:"maxHpBonus"`
	PowerBonus   int    `yaml:"powerBonus"`
	DefenseBonus int    `yaml:"defenseBonus"`
}

// ItemTemplate describes an item kind and its spawn weight by depth
type ItemTemplate struct {
	ID        string             `yaml:"id"`
	Name      string             `yaml:"name"`
	Glyph     string             `yaml:"glyph"`
	Color     string             `yaml:"color"`
	Kind      string             `yaml:"kind"`
	Equipment *EquipmentTemplate `yaml:"equipment"` // nil for consumables

	Weight LevelTable `yaml:"weight"`
}

// SpawnTables is the full content definition used to populate rooms
type SpawnTables struct {
	MaxMonsters LevelTable        `yaml:"maxMonsters"`
	MaxItems    LevelTable        `yaml:"maxItems"`
	Monsters    []MonsterTemplate `yaml:"monsters"`
	Items       []ItemTemplate    `yaml:"items"`
}

// DefaultSpawnTables returns the embedded content tables
func DefaultSpawnTables() (*SpawnTables, error) {
	return ParseSpawnTables(defaultSpawnTables)
}

// LoadSpawnTables reads spawn tables from a YAML file
func LoadSpawnTables(filePath string) (*SpawnTables, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn tables file: %w", err)
	}
	return ParseSpawnTables(data)
}

// ParseSpawnTables decodes and validates spawn tables from YAML
func ParseSpawnTables(data []byte) (*SpawnTables, error) {
	var tables SpawnTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse spawn tables YAML: %w", err)
	}

	if err := tables.Validate(); err != nil {
		return nil, err
	}

	return &tables, nil
}

// Validate ensures every table is well formed and that both the monster and
// the item table keep a positive total weight at every depth.
func (s *SpawnTables) Validate() error {
	if err := s.MaxMonsters.Validate(); err != nil {
		return fmt.Errorf("%w: maxMonsters: %v", ErrInvalidSpawnTables, err)
	}
	if err := s.MaxItems.Validate(); err != nil {
		return fmt.Errorf("%w: maxItems: %v", ErrInvalidSpawnTables, err)
	}
	if s.MaxMonsters.Min() < 0 || s.MaxItems.Min() < 0 {
		return fmt.Errorf("%w: per-room maximums cannot be negative", ErrInvalidSpawnTables)
	}

	if len(s.Monsters) == 0 {
		return fmt.Errorf("%w: monsters cannot be empty", ErrInvalidSpawnTables)
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("%w: items cannot be empty", ErrInvalidSpawnTables)
	}

	seen := make(map[string]bool)
	monsterFloor := false
	for _, m := range s.Monsters {
		if err := validateEntry(seen, m.ID, m.Name, m.Glyph, m.Weight); err != nil {
			return err
		}
		if m.Health <= 0 {
			return fmt.Errorf("%w: monster '%s' needs positive health", ErrInvalidSpawnTables, m.ID)
		}
		if m.Weight.Min() > 0 {
			monsterFloor = true
		}
	}

	itemFloor := false
	for _, it := range s.Items {
		if err := validateEntry(seen, it.ID, it.Name, it.Glyph, it.Weight); err != nil {
			return err
		}
		if it.Kind == "" {
			return fmt.Errorf("%w: item '%s' missing kind", ErrInvalidSpawnTables, it.ID)
		}
		if it.Equipment != nil && it.Equipment.Slot == "" {
			return fmt.Errorf("%w: equipment '%s' missing slot", ErrInvalidSpawnTables, it.ID)
		}
		if it.Weight.Min() > 0 {
			itemFloor = true
		}
	}

	// Without a baseline entry a shallow level could roll from an all-zero table.
	if !monsterFloor {
		return fmt.Errorf("%w: no monster keeps a positive weight at every depth", ErrInvalidSpawnTables)
	}
	if !itemFloor {
		return fmt.Errorf("%w: no item keeps a positive weight at every depth", ErrInvalidSpawnTables)
	}

	return nil
}

func validateEntry(seen map[string]bool, id, name, glyph string, weight LevelTable) error {
	if id == "" {
		return fmt.Errorf("%w: template ID cannot be empty", ErrInvalidSpawnTables)
	}
	if seen[id] {
		return fmt.Errorf("%w: duplicate template ID '%s'", ErrInvalidSpawnTables, id)
	}
	seen[id] = true

	if name == "" {
		return fmt.Errorf("%w: template '%s' missing name", ErrInvalidSpawnTables, id)
	}
	if utf8.RuneCountInString(glyph) != 1 {
		return fmt.Errorf("%w: template '%s' glyph must be a single character, got %q", ErrInvalidSpawnTables, id, glyph)
	}
	if err := weight.Validate(); err != nil {
		return fmt.Errorf("%w: template '%s' weight: %v", ErrInvalidSpawnTables, id, err)
	}
	if weight.Min() < 0 {
		return fmt.Errorf("%w: template '%s' has a negative weight", ErrInvalidSpawnTables, id)
	}
	return nil
}

// GetMonster returns a monster template by ID
func (s *SpawnTables) GetMonster(id string) (*MonsterTemplate, bool) {
	for i := range s.Monsters {
		if s.Monsters[i].ID == id {
			return &s.Monsters[i], true
		}
	}
	return nil, false
}

// GetItem returns an item template by ID
func (s *SpawnTables) GetItem(id string) (*ItemTemplate, bool) {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i], true
		}
	}
	return nil, false
}

// GlyphRune returns the template glyph as a rune
func GlyphRune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}
