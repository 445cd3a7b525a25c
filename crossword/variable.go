package crossword

import (
	"fmt"
	"strings"
)

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// ParseDirection converts a string such as "across" or "down" (case
// insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "across", "a":
		return Across, nil
	case "down", "d":
		return Down, nil
	}
	return Across, fmt.Errorf("unrecognized direction: %v", s)
}

// A Variable is a single slot in the grid: its starting cell, its length,
// and whether it runs across or down. Variables are value types and are
// used directly as map keys; two variables are the same slot iff all four
// fields match.
type Variable struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Direction, v.Length)
}

// Cell is a single grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Cells returns the coordinates this variable occupies, in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := 0; k < v.Length; k++ {
		cell := Cell{Row: v.Row, Col: v.Col}
		if v.Direction == Down {
			cell.Row += k
		} else {
			cell.Col += k
		}
		cells[k] = cell
	}
	return cells
}
