package kernel

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs rings. This is not a full (or
// even correct) svg parser. It finds whatever the first polygon is and
// converts it into a closed Ring. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Ring {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	ring := make(Ring, 0)
	for _, pair := range strings.Fields(pointString) {
		ordinates := strings.Split(pair, ",")
		if len(ordinates) != 2 {
			log.Fatalf("Invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(ordinates[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", ordinates[0], err)
		}
		y, err := strconv.ParseFloat(ordinates[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", ordinates[1], err)
		}
		ring = append(ring, Coordinate{X: x, Y: y})
	}

	// SVG polygons leave closure implicit.
	ring = append(ring, ring[0])
	return ring
}
