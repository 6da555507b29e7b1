package data

import (
	"errors"
	"testing"
)

func TestLevelTableValueAt(t *testing.T) {
	table, err := NewLevelTable(0,
		LevelStep{Level: 1, Value: 2},
		LevelStep{Level: 4, Value: 3},
		LevelStep{Level: 6, Value: 5},
	)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	tests := []struct {
		depth int
		want  int
	}{
		{0, 0},
		{1, 2},
		{3, 2},
		{4, 3},
		{5, 3},
		{6, 5},
		{10, 5},
	}

	for _, tt := range tests {
		if got := table.ValueAt(tt.depth); got != tt.want {
			t.Errorf("ValueAt(%d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestLevelTableMonotonic(t *testing.T) {
	table, err := NewLevelTable(0,
		LevelStep{Level: 3, Value: 15},
		LevelStep{Level: 5, Value: 30},
		LevelStep{Level: 7, Value: 60},
	)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	prev := table.ValueAt(0)
	for depth := 1; depth <= 20; depth++ {
		v := table.ValueAt(depth)
		if v < prev {
			t.Fatalf("ValueAt(%d) = %d decreased from %d", depth, v, prev)
		}
		prev = v
	}
}

func TestLevelTableDefaultBelowFirstStep(t *testing.T) {
	table := LevelTable{Default: 7, Steps: []LevelStep{{Level: 4, Value: 25}}}

	if got := table.ValueAt(3); got != 7 {
		t.Errorf("expected default 7 below first step, got %d", got)
	}
	if got := Constant(35).ValueAt(100); got != 35 {
		t.Errorf("constant table yielded %d", got)
	}
}

func TestLevelTableRejectsUnorderedSteps(t *testing.T) {
	tests := []struct {
		name  string
		steps []LevelStep
	}{
		{"duplicate", []LevelStep{{Level: 2, Value: 1}, {Level: 2, Value: 3}}},
		{"decreasing", []LevelStep{{Level: 5, Value: 1}, {Level: 3, Value: 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLevelTable(0, tt.steps...)
			if !errors.Is(err, ErrInvalidLevelTable) {
				t.Fatalf("expected ErrInvalidLevelTable, got %v", err)
			}
		})
	}
}

func TestLevelTableMin(t *testing.T) {
	table := LevelTable{Default: 5, Steps: []LevelStep{{Level: 2, Value: 0}, {Level: 4, Value: 9}}}
	if got := table.Min(); got != 0 {
		t.Errorf("Min() = %d, want 0", got)
	}
}
