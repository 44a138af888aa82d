package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/skipstone/internal/phase"
	"github.com/san-kum/skipstone/internal/sim"
)

// Per-regime stroke colors: airborne, planing, sunk.
var phaseColors = map[phase.Phase]string{
	phase.Flying:   "#00ccff",
	phase.Bouncing: "#ffcc00",
	phase.Sinking:  "#ff4444",
}

// TrajectorySVG renders the centroid path as a standalone SVG with the water
// surface drawn as a horizontal line. Segments are colored by regime so the
// contact intervals are visible at a glance.
func TrajectorySVG(result *sim.Result, waterLevel float64, width, height int) string {
	if len(result.States) < 2 {
		return ""
	}

	minX, maxX := result.States[0][0], result.States[0][0]
	minY, maxY := result.States[0][1], result.States[0][1]
	for _, s := range result.States {
		if s[0] < minX {
			minX = s[0]
		}
		if s[0] > maxX {
			maxX = s[0]
		}
		if s[1] < minY {
			minY = s[1]
		}
		if s[1] > maxY {
			maxY = s[1]
		}
	}
	// The surface must be in frame even for a flight that never touches it.
	if waterLevel < minY {
		minY = waterLevel
	}
	if waterLevel > maxY {
		maxY = waterLevel
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toPx := func(x, y float64) (float64, float64) {
		px := (x - minX) / rangeX * float64(width)
		py := float64(height) - (y-minY)/rangeY*float64(height)
		return px, py
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a1420"/>
`, width, height, width, height))

	_, wy := toPx(minX, waterLevel)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#2266aa" stroke-width="1" stroke-dasharray="6,3"/>
`, wy, width, wy))

	// One path per run of equal regime. Segments share their boundary point
	// so the curve stays connected across color changes.
	segStart := 0
	cur := statePhase(result, 1)
	for i := 2; i < len(result.States); i++ {
		if p := statePhase(result, i); p != cur {
			writeSegment(&sb, result, segStart, i-1, toPx)
			segStart = i - 1
			cur = p
		}
	}
	writeSegment(&sb, result, segStart, len(result.States)-1, toPx)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeSegment(sb *strings.Builder, result *sim.Result, start, end int, toPx func(x, y float64) (float64, float64)) {
	if end <= start {
		return
	}
	color := phaseColors[statePhase(result, start+1)]
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
	for i := start; i <= end; i++ {
		px, py := toPx(result.States[i][0], result.States[i][1])
		if i == start {
			fmt.Fprintf(sb, "%.1f,%.1f", px, py)
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", px, py)
		}
	}
	sb.WriteString("\"/>\n")
}

// statePhase maps state index i to the regime that produced it.
func statePhase(result *sim.Result, i int) phase.Phase {
	if i == 0 || len(result.Phases) == 0 {
		return phase.Flying
	}
	if i-1 < len(result.Phases) {
		return result.Phases[i-1]
	}
	return result.Phases[len(result.Phases)-1]
}
