package viz

import (
	"testing"

	"github.com/san-kum/skipstone/internal/geom"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected a dot in the first cell")
	}

	// Out of range must be a no-op.
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(1, 1)
	c.Set(5, 10)

	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatal("expected empty canvas after clear")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected lit cells along the line")
	}
}

func TestCanvasDrawPolygon(t *testing.T) {
	c := NewCanvas(10, 10)
	square := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	c.DrawPolygon(square, func(v geom.Vec) (int, int) {
		return int(v.X * 15), int(v.Y * 30)
	})

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				return
			}
		}
	}
	t.Error("expected polygon edges on the canvas")
}

func TestCanvasDashedHLine(t *testing.T) {
	c := NewCanvas(10, 4)
	c.DrawDashedHLine(0, 3, 2)

	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dash at start of line")
	}
	// A zero period must not light anything.
	c.Clear()
	c.DrawDashedHLine(0, 0, 0)
	if c.Grid[0][0] != 0x2800 {
		t.Error("expected no dots for zero period")
	}
}

func TestThemeCycle(t *testing.T) {
	defer SetTheme("ocean")

	SetTheme("retro")
	if CurrentTheme.Name != "retro" {
		t.Errorf("expected retro theme, got %s", CurrentTheme.Name)
	}

	SetTheme("nonexistent")
	if CurrentTheme.Name != "ocean" {
		t.Error("unknown theme should fall back to ocean")
	}
}
