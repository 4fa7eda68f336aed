// Package icon renders the Forest Floor application icon procedurally.
// Output is a pure function of the requested dimensions: no randomness,
// no external assets, byte-identical buffers on every call.
package icon

import (
	"fmt"
	"math"
)

// Color constants and geometry ratios are fixed aesthetic choices; do not
// re-derive them.
const (
	radiusRatio = 0.43 // outer ring radius / min(width,height)
	innerRatio  = 0.62 // inner disc radius / ring radius
	pipRatio    = 0.08 // pip disc radius / min(width,height)
	pipOffset   = 0.46 // pip center offset / inner radius
)

// Render computes the icon at width×height and returns it as raw PNG
// scanline rows: height rows, each a leading filter byte (0, "None")
// followed by 4 bytes R,G,B,A per pixel.
func Render(width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icon: invalid dimensions %dx%d", width, height)
	}

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	side := float64(min(width, height))
	radius := side * radiusRatio
	inner := radius * innerRatio
	pip := side * pipRatio
	pipSq := pip * pip

	// Four quadrant pips, a drum-machine nod.
	pips := [4][2]float64{
		{-inner * pipOffset, -inner * pipOffset},
		{inner * pipOffset, -inner * pipOffset},
		{-inner * pipOffset, inner * pipOffset},
		{inner * pipOffset, inner * pipOffset},
	}

	gradDenom := float64(max(height-1, 1))
	rows := make([]byte, 0, height*(1+width*4))
	for y := 0; y < height; y++ {
		rows = append(rows, 0) // filter type: None
		t := float64(y) / gradDenom
		for x := 0; x < width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			dist := math.Sqrt(dx*dx + dy*dy)

			// Warm background gradient, top to bottom.
			r := uint8(18 + (42-18)*t)
			g := uint8(31 + (84-31)*t)
			b := uint8(27 + (54-27)*t)

			// Outer ring band.
			if inner < dist && dist < radius {
				r, g, b = 215, 147, 54
			}

			// Inner disc, brightest at the center.
			if dist <= inner {
				falloff := 1 - dist/max(inner, 1)
				falloff = math.Min(1, math.Max(0, falloff))
				r = uint8(46 + 120*falloff)
				g = uint8(74 + 78*falloff)
				b = uint8(64 + 44*falloff)
			}

			// Pips override every layer below them.
			for _, p := range pips {
				pdx := dx - p[0]
				pdy := dy - p[1]
				if pdx*pdx+pdy*pdy <= pipSq {
					r, g, b = 245, 229, 184
					break
				}
			}

			rows = append(rows, r, g, b, 255)
		}
	}
	return rows, nil
}
