package mines

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revealedCount(g *Grid) (n int) {
	for _, t := range g.tiles {
		if t.Revealed {
			n++
		}
	}
	return
}

func TestRevealCascadesOverEmptyBoard(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		x, y          int
	}{
		{"3x3 centre", 3, 3, 1, 1},
		{"3x3 corner", 3, 3, 0, 0},
		{"1x1", 1, 1, 0, 0},
		{"26x30 corner", 26, 30, 0, 0},
		{"26x30 middle", 26, 30, 13, 15},
		{"26x1 strip", 26, 1, 25, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := layGrid(t, test.width, test.height)
			require.True(t, Reveal(g, test.x, test.y))
			assert.Equal(t, g.Area(), revealedCount(g))
		})
	}
}

func TestRevealMineLeavesGridUntouched(t *testing.T) {
	g := layGrid(t, 3, 3, [2]int{1, 1})
	before := slices.Clone(g.tiles)
	assert.False(t, Reveal(g, 1, 1))
	assert.Equal(t, before, g.tiles)
}

func TestRevealStopsAtNumberedBorder(t *testing.T) {
	// . . . 1 *
	g := layGrid(t, 5, 1, [2]int{4, 0})
	require.True(t, Reveal(g, 0, 0))
	for x := range 4 {
		assert.True(t, g.IsRevealed(x, 0), "tile %d", x)
	}
	assert.False(t, g.IsRevealed(4, 0))
}

func TestRevealNumberedTileDoesNotSpread(t *testing.T) {
	g := layGrid(t, 3, 3, [2]int{0, 0})
	require.True(t, Reveal(g, 1, 1))
	assert.Equal(t, 1, revealedCount(g))
}

func TestRevealEnclosedRegion(t *testing.T) {
	// . . * . .
	// . . * . .
	// * * * . .
	g := layGrid(t, 5, 3,
		[2]int{2, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2},
	)
	require.True(t, Reveal(g, 0, 0))
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		assert.True(t, g.IsRevealed(p[0], p[1]), "tile %v", p)
	}
	assert.Equal(t, 4, revealedCount(g))
}

func TestRevealSkipsFlaggedTiles(t *testing.T) {
	g := layGrid(t, 3, 1)
	g.SetFlagged(2, 0, true)
	require.True(t, Reveal(g, 0, 0))
	assert.True(t, g.IsRevealed(0, 0))
	assert.True(t, g.IsRevealed(1, 0))
	assert.False(t, g.IsRevealed(2, 0))
	assert.True(t, g.IsFlagged(2, 0))
}

func TestRevealIsIdempotent(t *testing.T) {
	g := layGrid(t, 6, 6, [2]int{5, 5}, [2]int{3, 0})
	require.True(t, Reveal(g, 0, 5))
	once := slices.Clone(g.tiles)
	require.True(t, Reveal(g, 0, 5))
	assert.Equal(t, once, g.tiles)
}
