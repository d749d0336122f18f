package viz

import (
	"strings"
)

// Braille cells hold a 2x4 dot grid:
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBlank = 0x2800

var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells addressed in dot coordinates.
// A canvas of Width x Height cells has (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// DotsX and DotsY are the canvas size in dots.
func (c *Canvas) DotsX() int { return c.Width * 2 }
func (c *Canvas) DotsY() int { return c.Height * 4 }

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Blank reports whether the cell at (row, col) has no dots set.
func (c *Canvas) Blank(row, col int) bool {
	return c.Grid[row][col] == brailleBlank
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. Endpoints are clamped
// to one dot outside the canvas so off-screen segments stay cheap.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	x0, y0 = c.clamp(x0, y0)
	x1, y1 = c.clamp(x1, y1)

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DashH draws a horizontal dashed line at dot row y.
func (c *Canvas) DashH(y, on, off int) {
	for x := 0; x < c.DotsX(); x++ {
		if x%(on+off) < on {
			c.Set(x, y)
		}
	}
}

// DashV draws a vertical dashed line at dot column x.
func (c *Canvas) DashV(x, on, off int) {
	for y := 0; y < c.DotsY(); y++ {
		if y%(on+off) < on {
			c.Set(x, y)
		}
	}
}

func (c *Canvas) clamp(x, y int) (int, int) {
	return clampInt(x, -1, c.DotsX()), clampInt(y, -1, c.DotsY())
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
