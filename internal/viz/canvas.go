package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set sets a pixel at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// SpinCanvas draws one dot per up spin. Row i of the lattice is pixel row i,
// so an N x N plane fits in ceil(N/2) x ceil(N/4) characters.
func SpinCanvas(rows [][]int8) *Canvas {
	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}

	c := NewCanvas((w+1)/2, (h+3)/4)
	for y, r := range rows {
		for x, s := range r {
			if s > 0 {
				c.Set(x, y)
			}
		}
	}
	return c
}

// SpinBlocks renders a plane one character per cell: '█' up, '·' down and
// ' ' for cells outside the populated region.
func SpinBlocks(rows [][]int8) string {
	var b strings.Builder
	for _, r := range rows {
		for _, s := range r {
			switch {
			case s > 0:
				b.WriteRune('█')
			case s < 0:
				b.WriteRune('·')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
