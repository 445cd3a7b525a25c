// Package crossword contains the problem model for the grid filler: the
// slot variables, the parsed grid structure, and the overlap constraints
// derived from it. Everything here is built once from the structure and
// word list and is read-only during solving.
package crossword

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// OpenCell is the character marking a fillable cell in a structure file.
// Any other character is a blocked cell.
const OpenCell = '_'

// An Overlap records the one cell two crossing variables share. A is the
// character index into the first variable's word, B the index into the
// second's; the characters at those positions must be equal.
type Overlap struct {
	A int
	B int
}

type varPair struct {
	x Variable
	y Variable
}

// A Crossword is a parsed grid plus the word list shared by every slot.
// The overlap table and neighbor lists are derived once from the grid
// geometry and never change.
type Crossword struct {
	Height    int
	Width     int
	Variables []Variable
	Words     []string

	open      [][]bool
	overlaps  map[varPair]Overlap
	neighbors map[Variable][]Variable
}

// New builds a Crossword from an already-parsed cell mask and a word list.
// Variables are every maximal horizontal or vertical run of at least two
// open cells.
func New(open [][]bool, words []string) *Crossword {
	cw := &Crossword{
		Height: len(open),
		open:   open,
		Words:  words,
	}
	for _, row := range open {
		if len(row) > cw.Width {
			cw.Width = len(row)
		}
	}
	cw.findVariables()
	cw.findOverlaps()
	return cw
}

// Open reports whether the cell at (row, col) is fillable. Out-of-range
// coordinates are blocked.
func (cw *Crossword) Open(row, col int) bool {
	if row < 0 || row >= cw.Height || col < 0 || col >= len(cw.open[row]) {
		return false
	}
	return cw.open[row][col]
}

func (cw *Crossword) findVariables() {
	for i := 0; i < cw.Height; i++ {
		for j := 0; j < cw.Width; j++ {
			if !cw.Open(i, j) {
				continue
			}
			// A variable starts wherever a run of open cells begins.
			if !cw.Open(i, j-1) && cw.Open(i, j+1) {
				length := 1
				for cw.Open(i, j+length) {
					length++
				}
				cw.Variables = append(cw.Variables, Variable{
					Row: i, Col: j, Length: length, Direction: Across,
				})
			}
			if !cw.Open(i-1, j) && cw.Open(i+1, j) {
				length := 1
				for cw.Open(i+length, j) {
					length++
				}
				cw.Variables = append(cw.Variables, Variable{
					Row: i, Col: j, Length: length, Direction: Down,
				})
			}
		}
	}
	// The scan above is already row-major, but sort anyway so that the
	// variable order (and with it solver tie-breaking) is a documented
	// property rather than an accident of the scan.
	sort.Slice(cw.Variables, func(a, b int) bool {
		va, vb := cw.Variables[a], cw.Variables[b]
		if va.Row != vb.Row {
			return va.Row < vb.Row
		}
		if va.Col != vb.Col {
			return va.Col < vb.Col
		}
		return va.Direction < vb.Direction
	})
}

func (cw *Crossword) findOverlaps() {
	cw.overlaps = make(map[varPair]Overlap)
	cw.neighbors = make(map[Variable][]Variable)

	cellIndex := make(map[Variable]map[Cell]int, len(cw.Variables))
	for _, v := range cw.Variables {
		idx := make(map[Cell]int, v.Length)
		for k, cell := range v.Cells() {
			idx[cell] = k
		}
		cellIndex[v] = idx
	}

	for _, x := range cw.Variables {
		for _, y := range cw.Variables {
			if x == y {
				continue
			}
			for cell, xi := range cellIndex[x] {
				if yi, ok := cellIndex[y][cell]; ok {
					cw.overlaps[varPair{x, y}] = Overlap{A: xi, B: yi}
					cw.neighbors[x] = append(cw.neighbors[x], y)
					break
				}
			}
		}
	}
	for _, ns := range cw.neighbors {
		sort.Slice(ns, func(a, b int) bool {
			if ns[a].Row != ns[b].Row {
				return ns[a].Row < ns[b].Row
			}
			if ns[a].Col != ns[b].Col {
				return ns[a].Col < ns[b].Col
			}
			return ns[a].Direction < ns[b].Direction
		})
	}
}

// Overlap returns the shared-cell record for the ordered pair (x, y); the
// A index refers to x's word and the B index to y's. The second return is
// false when the two variables have no cell in common.
func (cw *Crossword) Overlap(x, y Variable) (Overlap, bool) {
	ov, ok := cw.overlaps[varPair{x, y}]
	return ov, ok
}

// Neighbors returns the variables sharing at least one cell with v, in
// stable (row, col, direction) order.
func (cw *Crossword) Neighbors(v Variable) []Variable {
	return cw.neighbors[v]
}

// ParseStructure reads a text grid where OpenCell marks a fillable cell.
// Lines may have uneven lengths; missing trailing cells are blocked.
func ParseStructure(r io.Reader, words []string) (*Crossword, error) {
	scanner := bufio.NewScanner(r)
	var open [][]bool
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		row := make([]bool, len(line))
		for j, c := range line {
			row[j] = c == OpenCell
		}
		open = append(open, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}
	if len(open) == 0 {
		return nil, fmt.Errorf("structure is empty")
	}
	return New(open, words), nil
}

// LoadWords reads a word list, one word per line. Words are uppercased
// and deduplicated; blank lines are skipped. Order of first appearance is
// preserved.
func LoadWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	seen := make(map[string]bool)
	var words []string
	for scanner.Scan() {
		w := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// LoadFiles parses a structure file and a word-list file into a Crossword.
func LoadFiles(structurePath, wordsPath string) (*Crossword, error) {
	wf, err := os.Open(wordsPath)
	if err != nil {
		return nil, err
	}
	defer wf.Close()
	words, err := LoadWords(wf)
	if err != nil {
		return nil, err
	}

	sf, err := os.Open(structurePath)
	if err != nil {
		return nil, err
	}
	defer sf.Close()
	return ParseStructure(sf, words)
}
