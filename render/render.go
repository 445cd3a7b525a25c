// Package render turns a completed assignment back into something a human
// can look at: a terminal grid or a PNG. It only consumes solver output
// and never feeds back into solving.
package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/pmarks/gridfill/crossword"
)

const (
	cellSize   = 100
	cellBorder = 2
)

// LetterGrid lays the assigned words onto a Height×Width rune grid. Cells
// not covered by any word hold zero.
func LetterGrid(cw *crossword.Crossword, asg crossword.Assignment) [][]rune {
	letters := make([][]rune, cw.Height)
	for i := range letters {
		letters[i] = make([]rune, cw.Width)
	}
	for v, word := range asg {
		for k, cell := range v.Cells() {
			letters[cell.Row][cell.Col] = rune(word[k])
		}
	}
	return letters
}

// Text renders the assignment as a terminal grid: letters in open cells,
// full blocks elsewhere.
func Text(cw *crossword.Crossword, asg crossword.Assignment) string {
	letters := LetterGrid(cw, asg)
	var sb strings.Builder
	for i := 0; i < cw.Height; i++ {
		for j := 0; j < cw.Width; j++ {
			switch {
			case !cw.Open(i, j):
				sb.WriteRune('█')
			case letters[i][j] != 0:
				sb.WriteRune(letters[i][j])
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// SaveImage writes the assignment as a PNG: black canvas, white open
// cells with a border, centered black letters.
func SaveImage(cw *crossword.Crossword, asg crossword.Assignment, path string) error {
	letters := LetterGrid(cw, asg)
	img := image.NewRGBA(image.Rect(0, 0, cw.Width*cellSize, cw.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for i := 0; i < cw.Height; i++ {
		for j := 0; j < cw.Width; j++ {
			if !cw.Open(i, j) {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)
			if letters[i][j] != 0 {
				drawLetter(img, cell, letters[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// drawLetter rasterizes one glyph with the basic bitmap face and scales it
// up into the cell interior, keeping it centered.
func drawLetter(dst *image.RGBA, cell image.Rectangle, letter rune) {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Ascent+face.Descent
	glyph := image.NewRGBA(image.Rect(0, 0, gw, gh))
	draw.Draw(glyph, glyph.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	drawer := &font.Drawer{
		Dst:  glyph,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(string(letter))

	scale := (cell.Dy() * 3) / (gh * 4)
	w, h := gw*scale, gh*scale
	target := image.Rect(0, 0, w, h).Add(image.Point{
		X: cell.Min.X + (cell.Dx()-w)/2,
		Y: cell.Min.Y + (cell.Dy()-h)/2,
	})
	draw.NearestNeighbor.Scale(dst, target, glyph, glyph.Bounds(), draw.Over, nil)
}
