package viz

import (
	"strings"

	"github.com/san-kum/skipstone/internal/geom"
)

// Braille cells pack 2x4 dots per terminal character, Unicode offset 0x2800.
// Dot order within a cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille pixel buffer. Width and Height are in characters; the
// drawable area is (Width*2) x (Height*4) sub-pixels.
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

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are ignored.
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

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine rasterizes a segment with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
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

// DrawPolygon rasterizes a closed outline. project maps world coordinates to
// sub-pixel coordinates.
func (c *Canvas) DrawPolygon(p geom.Polygon, project func(geom.Vec) (int, int)) {
	n := len(p)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		x0, y0 := project(p[i])
		x1, y1 := project(p[(i+1)%n])
		c.DrawLine(x0, y0, x1, y1)
	}
}

// DrawDashedHLine draws a horizontal dashed line across the full width at
// sub-pixel row y.
func (c *Canvas) DrawDashedHLine(y, dash, gap int) {
	period := dash + gap
	if period <= 0 {
		return
	}
	for x := 0; x < c.Width*2; x++ {
		if x%period < dash {
			c.Set(x, y)
		}
	}
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
