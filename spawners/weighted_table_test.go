package spawners

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"rogue-dungeon/data"
)

func TestWeightedTableZeroWeightNeverChosen(t *testing.T) {
	table, err := NewWeightedTable([]WeightedEntry{
		{ID: "heal", Weight: 35},
		{ID: "lightning", Weight: 0},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		if got := table.Choose(rng); got != "heal" {
			t.Fatalf("draw %d returned %q", i, got)
		}
	}
}

func TestWeightedTableProportions(t *testing.T) {
	table, err := NewWeightedTable([]WeightedEntry{
		{ID: "orc", Weight: 80},
		{ID: "troll", Weight: 20},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	if table.TotalWeight() != 100 {
		t.Fatalf("expected total 100, got %d", table.TotalWeight())
	}

	rng := rand.New(rand.NewSource(42))
	counts := map[string]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[table.Choose(rng)]++
	}

	orcShare := float64(counts["orc"]) / draws
	if orcShare < 0.77 || orcShare > 0.83 {
		t.Errorf("orc share %.3f outside expected range", orcShare)
	}
}

func TestNewWeightedTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		entries []WeightedEntry
		wantErr error
		errText string
	}{
		{name: "empty", entries: nil, wantErr: ErrEmptyWeightedTable},
		{name: "zero sum", entries: []WeightedEntry{{ID: "a"}, {ID: "b"}}, wantErr: ErrZeroTotalWeight},
		{name: "negative", entries: []WeightedEntry{{ID: "a", Weight: 5}, {ID: "b", Weight: -1}}, errText: "negative weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWeightedTable(tt.entries)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("expected error containing %q, got %v", tt.errText, err)
			}
		})
	}
}

func TestDepthTablesFromDefaults(t *testing.T) {
	tables, err := data.DefaultSpawnTables()
	if err != nil {
		t.Fatalf("default tables: %v", err)
	}

	rng := rand.New(rand.NewSource(7))

	// Only potions are possible above depth 4.
	items, err := ItemTable(tables, 1)
	if err != nil {
		t.Fatalf("item table: %v", err)
	}
	for i := 0; i < 200; i++ {
		if got := items.Choose(rng); got != "healing_potion" {
			t.Fatalf("depth 1 produced %q", got)
		}
	}

	// Trolls only appear from depth 3.
	monsters, err := MonsterTable(tables, 2)
	if err != nil {
		t.Fatalf("monster table: %v", err)
	}
	for i := 0; i < 200; i++ {
		if got := monsters.Choose(rng); got != "orc" {
			t.Fatalf("depth 2 produced %q", got)
		}
	}

	deep, err := MonsterTable(tables, 7)
	if err != nil {
		t.Fatalf("monster table: %v", err)
	}
	if deep.TotalWeight() != 140 {
		t.Errorf("expected total weight 140 at depth 7, got %d", deep.TotalWeight())
	}
}

func TestDepthTableZeroSum(t *testing.T) {
	tables := &data.SpawnTables{
		Items: []data.ItemTemplate{{ID: "scroll", Weight: data.LevelTable{Steps: []data.LevelStep{{Level: 4, Value: 25}}}}},
	}

	_, err := ItemTable(tables, 1)
	if !errors.Is(err, ErrZeroTotalWeight) {
		t.Fatalf("expected ErrZeroTotalWeight, got %v", err)
	}
}
