package spawners

import (
	"errors"
	"fmt"
	"math/rand"

	"rogue-dungeon/data"
)

var (
	// ErrEmptyWeightedTable is returned when a table has no entries
	ErrEmptyWeightedTable = errors.New("weighted table has no entries")
	// ErrZeroTotalWeight is returned when every entry has weight 0
	ErrZeroTotalWeight = errors.New("weighted table weights sum to zero")
)

// WeightedEntry is one selectable category and its relative chance
type WeightedEntry struct {
	ID     string
	Weight int
}

// WeightedTable picks categories with probability proportional to weight
type WeightedTable struct {
	Entries     []WeightedEntry
	totalWeight int
}

// NewWeightedTable validates the entries and builds a table
func NewWeightedTable(entries []WeightedEntry) (*WeightedTable, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyWeightedTable
	}

	total := 0
	for _, entry := range entries {
		if entry.Weight < 0 {
			return nil, fmt.Errorf("entry '%s' has negative weight %d", entry.ID, entry.Weight)
		}
		total += entry.Weight
	}
	if total == 0 {
		return nil, ErrZeroTotalWeight
	}

	return &WeightedTable{
		Entries:     entries,
		totalWeight: total,
	}, nil
}

// TotalWeight returns the sum of all entry weights
func (wt *WeightedTable) TotalWeight() int {
	return wt.totalWeight
}

// Choose draws one entry ID. Entries with weight 0 are never returned.
func (wt *WeightedTable) Choose(rng *rand.Rand) string {
	roll := rng.Intn(wt.totalWeight)
	currentWeight := 0

	for _, entry := range wt.Entries {
		currentWeight += entry.Weight
		if roll < currentWeight {
			return entry.ID
		}
	}

	// Unreachable while totalWeight matches the entries
	return wt.Entries[len(wt.Entries)-1].ID
}

// MonsterTable builds the species table for a dungeon depth
func MonsterTable(tables *data.SpawnTables, depth int) (*WeightedTable, error) {
	entries := make([]WeightedEntry, 0, len(tables.Monsters))
	for _, m := range tables.Monsters {
		entries = append(entries, WeightedEntry{ID: m.ID, Weight: m.Weight.ValueAt(depth)})
	}

	table, err := NewWeightedTable(entries)
	if err != nil {
		return nil, fmt.Errorf("monster table at depth %d: %w", depth, err)
	}
	return table, nil
}

// ItemTable builds the item table for a dungeon depth
func ItemTable(tables *data.SpawnTables, depth int) (*WeightedTable, error) {
	entries := make([]WeightedEntry, 0, len(tables.Items))
	for _, it := range tables.Items {
		entries = append(entries, WeightedEntry{ID: it.ID, Weight: it.Weight.ValueAt(depth)})
	}

	table, err := NewWeightedTable(entries)
	if err != nil {
		return nil, fmt.Errorf("item table at depth %d: %w", depth, err)
	}
	return table, nil
}
