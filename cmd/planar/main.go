package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hullkit/planar"
)

// Demo driver for the kernel. Input is newline separated points in the form
// "x y" on stdin, or the first <polygon> of an SVG file. Results go to stdout
// as point lists, and optionally to a PNG.

var (
	app     = kingpin.New("planar", "Convex hulls, clipping and containment over point lists.")
	svgPath = app.Flag("svg", "Read input from the first <polygon> in an SVG file instead of stdin.").String()
	pngPath = app.Flag("png", "Render input and result to a PNG file.").String()
	cat     = app.Flag("cat", "Pipe the rendered PNG through imgcat.").Bool()
	scale   = app.Flag("scale", "Pixels per input unit when rendering.").Default("4").Float64()

	hullCmd    = app.Command("hull", "Compute the convex hull of the input points.")
	hullApprox = hullCmd.Flag("approx", "Use the O(n) approximate hull.").Bool()

	clipCmd    = app.Command("clip", "Clip the input polyline against a rectangular window.")
	clipWindow = clipCmd.Flag("window", "Window as minX,minY,maxX,maxY.").Required().String()

	containsCmd = app.Command("contains", "Classify a point against the input ring.")
	containsAt  = containsCmd.Flag("at", "Target point as x,y.").Required().String()

	repairCmd = app.Command("repair", "De-duplicate the input ring and report what survives.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	points := readInput()

	switch command {
	case hullCmd.FullCommand():
		runHull(points)
	case clipCmd.FullCommand():
		runClip(points)
	case containsCmd.FullCommand():
		runContains(points)
	case repairCmd.FullCommand():
		runRepair(points)
	}
}

func runHull(points []planar.Coordinate) {
	var hull []planar.Coordinate
	var err error
	if *hullApprox {
		hull, err = planar.ApproximateConvexHull(points, nil)
	} else {
		hull, err = planar.ConvexHull(points, nil)
	}
	if err != nil {
		log.Fatal(err)
	}
	printLine(planar.Line(hull))
	render([]planar.Line{planar.Line(hull)}, points)
}

func runClip(points []planar.Coordinate) {
	env := parseEnvelope(*clipWindow)
	pieces, err := planar.ClipToEnvelope(planar.Line(points), env, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d visible piece(s)\n", len(pieces))
	for _, piece := range pieces {
		printLine(piece)
	}
	render(append(pieces, planar.Line(env.Ring())), points)
}

func runContains(points []planar.Coordinate) {
	target := parsePoint(strings.ReplaceAll(*containsAt, ",", " "))
	ring := closeRing(points)
	result, err := planar.Contains(ring, target, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result)
	render([]planar.Line{planar.Line(ring)}, []planar.Coordinate{target})
}

func runRepair(points []planar.Coordinate) {
	repaired, err := planar.RepairRing(closeRing(points))
	if err != nil {
		log.Fatal(err)
	}
	switch repaired.Kind {
	case planar.RepairPolygon:
		fmt.Println("polygon")
		printLine(planar.Line(repaired.Polygon.Shell))
	case planar.RepairLine:
		fmt.Println("line")
		printLine(repaired.Line)
	case planar.RepairPoint:
		fmt.Printf("point %g %g\n", repaired.Point.X, repaired.Point.Y)
	default:
		fmt.Println("nothing survives")
	}
}

func readInput() []planar.Coordinate {
	if *svgPath != "" {
		return readSVG(*svgPath)
	}
	return readPoints(os.Stdin)
}

// readPoints scans newline separated "x y" pairs.
func readPoints(in *os.File) []planar.Coordinate {
	points := []planar.Coordinate{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) planar.Coordinate {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		log.Fatalf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("invalid y value %q: %v", parts[1], err)
	}
	return planar.Coordinate{X: x, Y: y}
}

func parseEnvelope(s string) planar.Envelope {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		log.Fatalf("invalid window %q, want minX,minY,maxX,maxY", s)
	}
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			log.Fatalf("invalid window ordinate %q: %v", part, err)
		}
		vals[i] = v
	}
	return planar.Envelope{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}
}

// readSVG pulls the point list out of the first <polygon> element.
func readSVG(path string) []planar.Coordinate {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("could not open %q: %v", path, err)
	}
	defer f.Close()
	rootEl, err := svgparser.Parse(f, true)
	if err != nil {
		log.Fatalf("failed to parse %q: %v", path, err)
	}
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("no polygons found in %q", path)
	}
	points := []planar.Coordinate{}
	for _, pair := range strings.Fields(polygons[0].Attributes["points"]) {
		points = append(points, parsePoint(strings.ReplaceAll(pair, ",", " ")))
	}
	return points
}

func closeRing(points []planar.Coordinate) planar.Ring {
	ring := planar.Ring(points)
	if len(ring) >= 2 && !ring[0].Equals2D(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	return ring
}

func printLine(line planar.Line) {
	parts := make([]string, len(line))
	for i, c := range line {
		parts[i] = fmt.Sprintf("(%g, %g)", c.X, c.Y)
	}
	fmt.Println(strings.Join(parts, " "))
}

const renderPadding = 20

func render(lines []planar.Line, points []planar.Coordinate) {
	if *pngPath == "" {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	expand := func(c planar.Coordinate) {
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

	width := int(*scale*(maxX-minX)) + renderPadding*2
	height := int(*scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Origin at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(*scale, *scale)
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
		c.DrawCircle(p.X, p.Y, 3/(*scale))
		c.Fill()
	}

	if err := c.SavePNG(*pngPath); err != nil {
		log.Fatalf("could not write %q: %v", *pngPath, err)
	}
	if *cat {
		imgcat.CatFile(*pngPath, os.Stdout)
	}
}
