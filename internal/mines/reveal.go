package mines

import "github.com/sirupsen/logrus"

// Reveal opens x:y. It returns false, leaving the grid untouched, if there is
// a mine there. Otherwise the tile is revealed and, when it has no mined
// neighbours, the opening spreads over the connected empty region up to and
// including its numbered border. Unlike a plain reveal, which only stops at
// revealed tiles, the spread also stops at flagged ones and leaves them shut.
func Reveal(g *Grid, x, y int) bool {
	start := g.index(x, y)
	if g.tiles[start].Mine {
		return false
	}
	if g.tiles[start].Revealed {
		return true
	}

	// Tiles are marked revealed when pushed, so each enters the stack once
	// and the capacity never grows.
	todo := make([]int, 0, g.Area())
	g.tiles[start].Revealed = true
	todo = append(todo, start)
	opened := 0

	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		opened++

		cx, cy := i%g.width, i/g.width
		if g.AdjacentMines(cx, cy) != 0 {
			continue
		}
		for _, d := range neighbours {
			nx, ny := cx+d[0], cy+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			j := ny*g.width + nx
			if t := &g.tiles[j]; !t.Revealed && !t.Flagged {
				t.Revealed = true
				todo = append(todo, j)
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"x": x, "y": y, "opened": opened,
	}).Debug("tiles revealed")
	return true
}
