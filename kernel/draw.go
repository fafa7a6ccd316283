package kernel

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// dbgDraw renders a set of polylines (hull rings, windows, clip output) plus
// loose points to /tmp/planar.png and cats it to the terminal.
func dbgDraw(lines []Line, points []Coordinate, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	expand := func(c Coordinate) {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	for _, line := range lines {
		for _, c := range line {
			expand(c)
		}
	}
	for _, c := range points {
		expand(c)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		c.MoveTo(line[0].X, line[0].Y)
		for _, p := range line[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.Stroke()
	}

	c.SetRGB(0, 1, 0)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/planar.png")
	imgcat.CatFile("/tmp/planar.png", os.Stdout)
}
