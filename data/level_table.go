package data

import (
	"errors"
	"fmt"
)

// ErrInvalidLevelTable is returned when thresholds are not strictly increasing
var ErrInvalidLevelTable = errors.New("invalid level table")

// LevelStep switches the table to Value from dungeon depth Level onwards
type LevelStep struct {
	Level int `yaml:"level"`
	Value int `yaml:"value"`
}

// LevelTable is a step function from dungeon depth to a number. Below the
// first step it yields Default.
type LevelTable struct {
	Default int         `yaml:"default"`
	Steps   []LevelStep `yaml:"steps"`
}

// NewLevelTable builds and validates a level table
func NewLevelTable(def int, steps ...LevelStep) (LevelTable, error) {
	t := LevelTable{Default: def, Steps: steps}
	if err := t.Validate(); err != nil {
		return LevelTable{}, err
	}
	return t, nil
}

// Constant returns a table that yields value at every depth
func Constant(value int) LevelTable {
	return LevelTable{Default: value}
}

// Validate checks that step levels are strictly increasing
func (t LevelTable) Validate() error {
	for i := 1; i < len(t.Steps); i++ {
		if t.Steps[i].Level <= t.Steps[i-1].Level {
			return fmt.Errorf("%w: level %d follows level %d", ErrInvalidLevelTable, t.Steps[i].Level, t.Steps[i-1].Level)
		}
	}
	return nil
}

// ValueAt returns the value of the last step whose level is <= depth
func (t LevelTable) ValueAt(depth int) int {
	value := t.Default
	for _, step := range t.Steps {
		if step.Level > depth {
			break
		}
		value = step.Value
	}
	return value
}

// Min returns the smallest value the table can yield at any depth
func (t LevelTable) Min() int {
	m := t.Default
	for _, step := range t.Steps {
		if step.Value < m {
			m = step.Value
		}
	}
	return m
}
