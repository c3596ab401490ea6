package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

// Tile is one square of the board.
type Tile struct {
	Mine     bool
	Revealed bool
	Flagged  bool
}

// Grid holds the tiles of a board in row-major order (index y*width + x).
type Grid struct {
	width, height int
	tiles         []Tile
	mines         int
	seeded        bool
}

func NewGrid(width, height int) (*Grid, error) {
	if width < MinWidth || width > MaxWidth {
		return nil, &ConfigError{Field: "width", Value: width, Min: MinWidth, Max: MaxWidth}
	}
	if height < MinHeight || height > MaxHeight {
		return nil, &ConfigError{Field: "height", Value: height, Min: MinHeight, Max: MaxHeight}
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Area() int { return g.width * g.height }

// Mines is the number of mines placed on the grid; zero before PlaceMines.
func (g *Grid) Mines() int { return g.mines }

// Seeded reports whether PlaceMines has run.
func (g *Grid) Seeded() bool { return g.seeded }

func (g *Grid) InBounds(x, y int) bool {
	return 0 <= x && x < g.width && 0 <= y && y < g.height
}

// panics [AssertionError]
func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(AssertionError{fmt.Sprintf("tile %d:%d outside %dx%d grid", x, y, g.width, g.height)})
	}
	return y*g.width + x
}

// PlaceMines seeds count mines in row-major order starting at the top left
// tile, then swaps each seeded tile, in the same order, with a tile at a
// random position. This spreads the mines out but the result is not exactly
// uniform: the swaps run once per mine rather than once per tile.
//
// panics [AssertionError] when called twice
func (g *Grid) PlaceMines(count int, r *rand.Rand) {
	if g.seeded {
		panic(AssertionError{"mines already placed"})
	}
	g.seeded = true
	g.mines = clamp(count, 0, g.Area())

	for i := range g.mines {
		g.tiles[i].Mine = true
	}
	for i := range g.mines {
		j := g.index(r.IntN(g.width), r.IntN(g.height))
		g.tiles[i], g.tiles[j] = g.tiles[j], g.tiles[i]
	}

	Log.WithFields(logrus.Fields{
		"width":  g.width,
		"height": g.height,
		"mines":  g.mines,
	}).Debug("mines placed")
}

// AdjacentMines counts mines around x:y, not wrapping at the edges.
func (g *Grid) AdjacentMines(x, y int) (count int) {
	g.index(x, y)
	for _, d := range neighbours {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) && g.tiles[ny*g.width+nx].Mine {
			count++
		}
	}
	return
}

// RelocateMine moves the mine under x:y, if any, to a random mine-free tile.
// Nothing happens when every tile has a mine.
func (g *Grid) RelocateMine(x, y int, r *rand.Rand) {
	i := g.index(x, y)
	if !g.tiles[i].Mine {
		return
	}
	free := g.Area() - g.mines
	if free <= 0 {
		return
	}
	nth := r.IntN(free)
	for j := range g.tiles {
		if g.tiles[j].Mine {
			continue
		}
		if nth > 0 {
			nth--
			continue
		}
		g.tiles[i].Mine = false
		g.tiles[j].Mine = true
		Log.WithFields(logrus.Fields{
			"from": fmt.Sprintf("%d:%d", x, y),
			"to":   fmt.Sprintf("%d:%d", j%g.width, j/g.width),
		}).Debug("mine relocated")
		return
	}
}

func (g *Grid) RevealAll() {
	for i := range g.tiles {
		g.tiles[i].Revealed = true
	}
}

func (g *Grid) Tile(x, y int) Tile { return g.tiles[g.index(x, y)] }
func (g *Grid) IsMine(x, y int) bool { return g.tiles[g.index(x, y)].Mine }
func (g *Grid) IsRevealed(x, y int) bool { return g.tiles[g.index(x, y)].Revealed }
func (g *Grid) IsFlagged(x, y int) bool { return g.tiles[g.index(x, y)].Flagged }
func (g *Grid) SetFlagged(x, y int, v bool) { g.tiles[g.index(x, y)].Flagged = v }
func (g *Grid) SetRevealed(x, y int, v bool) { g.tiles[g.index(x, y)].Revealed = v }

// CountMines scans the tiles; it always equals Mines once the grid is seeded.
func (g *Grid) CountMines() (count int) {
	for _, t := range g.tiles {
		if t.Mine {
			count++
		}
	}
	return
}

// ToString draws the true layout, for logs and tests.
func (g *Grid) ToString() string {
	var b strings.Builder
	for y := range g.height {
		for x := range g.width {
			t := g.tiles[y*g.width+x]
			switch {
			case t.Mine:
				b.WriteString("* ")
			case t.Flagged:
				b.WriteString("F ")
			default:
				fmt.Fprintf(&b, "%d ", g.AdjacentMines(x, y))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
