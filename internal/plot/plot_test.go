package plot

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/vovakirdan/randwalk/internal/playground"
	"github.com/vovakirdan/randwalk/internal/raster"
	"github.com/vovakirdan/randwalk/internal/sim"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(8, 3)
	if c.Width() != 8 || c.Height() != 3 {
		t.Fatalf("size = %dx%d, want 8x3", c.Width(), c.Height())
	}
	if got := c.String(); got != strings.Repeat(" ", 8)+"\n"+strings.Repeat(" ", 8)+"\n"+strings.Repeat(" ", 8) {
		t.Errorf("new canvas not blank: %q", got)
	}

	c = NewCanvas(0, -2)
	if c.Width() != 1 || c.Height() != 1 {
		t.Errorf("clamped size = %dx%d, want 1x1", c.Width(), c.Height())
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Set(2, 3, 'X', ColorRed)
	if got := c.Get(2, 3); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("Get(2, 3) = %+v", got)
	}

	c.Set(-1, 0, 'A', ColorDefault)
	c.Set(5, 0, 'A', ColorDefault)
	if got := c.Get(-1, 0); got.Rune != ' ' {
		t.Errorf("out of bounds Get = %q, want space", got.Rune)
	}
	if strings.ContainsRune(c.String(), 'A') {
		t.Error("out of bounds Set should be ignored")
	}
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"horizontal", 0, 0, 4, 0, 5},
		{"vertical", 2, 4, 2, 0, 5},
		{"diagonal", 0, 0, 4, 4, 5},
		{"point", 3, 3, 3, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(5, 5)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, '*', ColorDefault)
			if got := strings.Count(c.String(), "*"); got != tt.want {
				t.Errorf("drew %d cells, want %d", got, tt.want)
			}
			if c.Get(tt.x0, tt.y0).Rune != '*' || c.Get(tt.x1, tt.y1).Rune != '*' {
				t.Error("line endpoints not drawn")
			}
		})
	}
}

func TestProjectionCentresOrigin(t *testing.T) {
	b := orb.Bound{Min: orb.Point{-10, -3}, Max: orb.Point{4, 5}}
	p := NewProjection(b, 21, 11)

	if x, y := p.Cell(orb.Point{0, 0}); x != 10 || y != 5 {
		t.Errorf("origin at (%d, %d), want (10, 5)", x, y)
	}
	// Half extents are 10 and 5.
	if x, y := p.Cell(orb.Point{-10, 5}); x != 0 || y != 0 {
		t.Errorf("top-left at (%d, %d), want (0, 0)", x, y)
	}
	if x, y := p.Cell(orb.Point{10, -5}); x != 20 || y != 10 {
		t.Errorf("bottom-right at (%d, %d), want (20, 10)", x, y)
	}
	// North is up.
	_, yn := p.Cell(orb.Point{0, 2})
	_, ys := p.Cell(orb.Point{0, -2})
	if yn >= ys {
		t.Errorf("north row %d should be above south row %d", yn, ys)
	}
}

func TestPlaygroundOutline(t *testing.T) {
	b, err := playground.New(10, 5, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(21, 11)
	Playground(c, NewProjection(b.Bound(), 21, 11), b)

	for _, pt := range [][2]int{{0, 0}, {20, 0}, {0, 10}, {20, 10}, {10, 0}, {0, 5}} {
		if got := c.Get(pt[0], pt[1]).Rune; got != GlyphEdge {
			t.Errorf("cell %v = %q, want edge", pt, got)
		}
	}
	if got := c.Get(10, 5).Rune; got != ' ' {
		t.Errorf("centre = %q, want blank", got)
	}
}

func TestPlaygroundShores(t *testing.T) {
	b, err := playground.New(250, 250, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(60, 30)
	Playground(c, NewProjection(b.Bound(), 60, 30), b)
	if !strings.ContainsRune(c.String(), GlyphShore) {
		t.Error("ring lake shores not drawn")
	}
}

func TestWalkPlot(t *testing.T) {
	opts := sim.DefaultWalkOptions()
	opts.Steps = 200
	opts.Walkers = 2
	opts.Seed = 3
	res, err := sim.RunWalk(opts)
	if err != nil {
		t.Fatal(err)
	}

	out := Walk(res, 40, 20).String()
	if !strings.ContainsRune(out, GlyphStart) {
		t.Error("start marker missing")
	}
	if !strings.ContainsRune(out, GlyphEdge) {
		t.Error("playground edge missing")
	}

	empty := WalkPrefix(res, 40, 20, 0).String()
	if strings.ContainsRune(empty, GlyphPath) || strings.ContainsRune(empty, GlyphStart) {
		t.Error("zero-length prefix should draw no paths")
	}
	if Walk(nil, 4, 2).String() != "    \n    " {
		t.Error("nil result should give a blank canvas")
	}
}

func TestGridPlot(t *testing.T) {
	g, err := raster.New(100, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	c := Grid(g, 80, 40)
	if c.Width() != 10 || c.Height() != 10 {
		t.Fatalf("size = %dx%d, want 10x10", c.Width(), c.Height())
	}
	if got := strings.Count(c.String(), string(GlyphObstacle)); got != 9 {
		t.Errorf("obstacle cells = %d, want 9", got)
	}
}

func TestGridPlotDownsample(t *testing.T) {
	g, err := raster.New(400, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	c := Grid(g, 10, 5)
	if c.Width() != 10 || c.Height() != 5 {
		t.Fatalf("size = %dx%d, want 10x5", c.Width(), c.Height())
	}
	if !strings.ContainsRune(c.String(), GlyphObstacle) {
		t.Error("obstacle lost when downsampling")
	}
}

func TestGridPrefix(t *testing.T) {
	g, err := raster.New(100, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	path := []raster.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}
	g.Mark(0, 0, raster.Start)
	for _, pos := range path[1:] {
		g.Mark(pos.Row, pos.Col, raster.Visited)
	}

	c := GridPrefix(g, path, 10, 10, 2)
	// Grid row 0 is the bottom line.
	if got := c.Get(0, 9).Rune; got != GlyphStart {
		t.Errorf("start cell = %q, want %q", got, GlyphStart)
	}
	if got := c.Get(1, 9).Rune; got != GlyphGridHead {
		t.Errorf("head cell = %q, want %q", got, GlyphGridHead)
	}
	if got := c.Get(2, 9).Rune; got != ' ' {
		t.Errorf("future cell = %q, want blank", got)
	}
}

func TestRenderKeepsText(t *testing.T) {
	c := NewCanvas(6, 1)
	c.DrawText(0, 0, "ab", ColorRed)
	c.DrawText(2, 0, "cd", ColorBlue)
	if !strings.Contains(c.Render(), "ab") || !strings.Contains(c.Render(), "cd") {
		t.Errorf("Render lost text: %q", c.Render())
	}
}
