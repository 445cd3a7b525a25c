package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/pmarks/gridfill/crossword"
)

func crossingPuzzle(t *testing.T) (*crossword.Crossword, crossword.Assignment) {
	t.Helper()
	structure := `___
#_#
#_#`
	cw, err := crossword.ParseStructure(strings.NewReader(structure), []string{"BAT", "ARC"})
	if err != nil {
		t.Fatal(err)
	}
	across := crossword.Variable{Row: 0, Col: 0, Length: 3, Direction: crossword.Across}
	down := crossword.Variable{Row: 0, Col: 1, Length: 3, Direction: crossword.Down}
	return cw, crossword.Assignment{across: "BAT", down: "ARC"}
}

func TestLetterGrid(t *testing.T) {
	is := is.New(t)
	cw, asg := crossingPuzzle(t)
	letters := LetterGrid(cw, asg)
	is.Equal(string(letters[0]), "BAT")
	is.Equal(letters[1][1], 'R')
	is.Equal(letters[2][1], 'C')
	is.Equal(letters[1][0], rune(0))
}

func TestText(t *testing.T) {
	is := is.New(t)
	cw, asg := crossingPuzzle(t)
	is.Equal(Text(cw, asg), "BAT\n█R█\n█C█\n")
}

func TestTextPartialAssignment(t *testing.T) {
	is := is.New(t)
	cw, _ := crossingPuzzle(t)
	down := crossword.Variable{Row: 0, Col: 1, Length: 3, Direction: crossword.Down}
	// Open cells not covered by an assigned word render as spaces.
	is.Equal(Text(cw, crossword.Assignment{down: "ARC"}), " A \n█R█\n█C█\n")
}

func TestSaveImage(t *testing.T) {
	is := is.New(t)
	cw, asg := crossingPuzzle(t)
	path := filepath.Join(t.TempDir(), "out.png")
	is.NoErr(SaveImage(cw, asg, path))

	f, err := os.Open(path)
	is.NoErr(err)
	defer f.Close()
	img, err := png.Decode(f)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), cw.Width*100)
	is.Equal(img.Bounds().Dy(), cw.Height*100)
}
