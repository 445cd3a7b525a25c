package crossword

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestParseStructure(t *testing.T) {
	is := is.New(t)
	structure := `#___
#_##
#_##`
	cw, err := ParseStructure(strings.NewReader(structure), nil)
	is.NoErr(err)
	is.Equal(cw.Height, 3)
	is.Equal(cw.Width, 4)
	is.Equal(cw.Variables, []Variable{
		{Row: 0, Col: 1, Length: 3, Direction: Across},
		{Row: 0, Col: 1, Length: 3, Direction: Down},
	})
}

func TestParseStructureRaggedRows(t *testing.T) {
	is := is.New(t)
	// The second row is shorter; its missing cells are blocked.
	structure := "___\n_"
	cw, err := ParseStructure(strings.NewReader(structure), nil)
	is.NoErr(err)
	is.Equal(cw.Width, 3)
	is.True(!cw.Open(1, 1))
	is.True(!cw.Open(1, 2))
}

func TestParseStructureEmpty(t *testing.T) {
	is := is.New(t)
	_, err := ParseStructure(strings.NewReader(""), nil)
	is.True(err != nil)
}

func TestSingleCellRunsAreNotVariables(t *testing.T) {
	is := is.New(t)
	structure := `_#_
###
___`
	cw, err := ParseStructure(strings.NewReader(structure), nil)
	is.NoErr(err)
	is.Equal(cw.Variables, []Variable{
		{Row: 2, Col: 0, Length: 3, Direction: Across},
	})
}

func TestOverlaps(t *testing.T) {
	is := is.New(t)
	structure := `___
#_#
#_#`
	cw, err := ParseStructure(strings.NewReader(structure), nil)
	is.NoErr(err)

	across := Variable{Row: 0, Col: 0, Length: 3, Direction: Across}
	down := Variable{Row: 0, Col: 1, Length: 3, Direction: Down}
	is.Equal(cw.Variables, []Variable{across, down})

	ov, ok := cw.Overlap(across, down)
	is.True(ok)
	is.Equal(ov, Overlap{A: 1, B: 0})

	// The reversed pair has the indices swapped.
	ov, ok = cw.Overlap(down, across)
	is.True(ok)
	is.Equal(ov, Overlap{A: 0, B: 1})

	is.Equal(cw.Neighbors(across), []Variable{down})
	is.Equal(cw.Neighbors(down), []Variable{across})
}

func TestNoOverlapForDisjointSlots(t *testing.T) {
	is := is.New(t)
	structure := `___
###
___`
	cw, err := ParseStructure(strings.NewReader(structure), nil)
	is.NoErr(err)
	is.Equal(len(cw.Variables), 2)
	_, ok := cw.Overlap(cw.Variables[0], cw.Variables[1])
	is.True(!ok)
	is.Equal(len(cw.Neighbors(cw.Variables[0])), 0)
}

func TestVariableCells(t *testing.T) {
	is := is.New(t)
	v := Variable{Row: 2, Col: 1, Length: 3, Direction: Down}
	is.Equal(v.Cells(), []Cell{{2, 1}, {3, 1}, {4, 1}})

	v = Variable{Row: 0, Col: 2, Length: 2, Direction: Across}
	is.Equal(v.Cells(), []Cell{{0, 2}, {0, 3}})
}

func TestLoadWords(t *testing.T) {
	words, err := LoadWords(strings.NewReader("cat\n\nDog\nCAT\n bird \n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG", "BIRD"}, words)
}

func TestParseDirection(t *testing.T) {
	is := is.New(t)
	d, err := ParseDirection("Across")
	is.NoErr(err)
	is.Equal(d, Across)
	d, err = ParseDirection("d")
	is.NoErr(err)
	is.Equal(d, Down)
	_, err = ParseDirection("sideways")
	is.True(err != nil)
}

func TestDomains(t *testing.T) {
	is := is.New(t)
	structure := `___
#_#
#_#`
	words := []string{"BAT", "ARC"}
	cw, err := ParseStructure(strings.NewReader(structure), words)
	is.NoErr(err)

	domains := NewDomains(cw)
	is.Equal(len(domains), 2)
	for _, v := range cw.Variables {
		is.Equal(len(domains[v]), 2)
	}

	cp := domains.Copy()
	delete(cp[cw.Variables[0]], "BAT")
	is.Equal(len(domains[cw.Variables[0]]), 2)
}

func TestAssignment(t *testing.T) {
	is := is.New(t)
	a := Variable{Row: 0, Col: 0, Length: 3, Direction: Across}
	b := Variable{Row: 0, Col: 1, Length: 3, Direction: Down}

	asg := Assignment{a: "BAT"}
	is.True(!asg.Complete([]Variable{a, b}))
	is.True(asg.Used("BAT"))
	is.True(!asg.Used("ARC"))

	asg[b] = "ARC"
	is.True(asg.Complete([]Variable{a, b}))
}
