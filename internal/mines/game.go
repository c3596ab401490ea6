package mines

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type GameParams struct {
	Width, Height, MineCount int
}

// Validate checks the board bounds. A mine count above the board area is
// not an error; NewGame clamps it.
func (p GameParams) Validate() error {
	if p.Width < MinWidth || p.Width > MaxWidth {
		return &ConfigError{Field: "width", Value: p.Width, Min: MinWidth, Max: MaxWidth}
	}
	if p.Height < MinHeight || p.Height > MaxHeight {
		return &ConfigError{Field: "height", Value: p.Height, Min: MinHeight, Max: MaxHeight}
	}
	if p.MineCount < MinMines {
		return &ConfigError{Field: "mines", Value: p.MineCount, Min: MinMines, Max: MaxMines}
	}
	return nil
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.MineCount)
}

type Status int

const (
	Continue Status = iota
	Won
	Lost
	Quit
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Over reports whether s is a terminal status.
func (s Status) Over() bool { return s != Continue }

// Game is one round of play. Mines are not placed until the first flag or
// reveal, so that the first reveal can be made safe.
type Game struct {
	grid        *Grid
	mines       int
	flags       int
	found       int
	initialized bool
	status      Status
	rand        *rand.Rand
}

func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(params.Width, params.Height)
	if err != nil {
		return nil, err
	}
	return &Game{
		grid:  grid,
		mines: min(params.MineCount, grid.Area()),
		rand:  r,
	}, nil
}

func (g *Game) Grid() *Grid { return g.grid }
func (g *Game) Mines() int { return g.mines }
func (g *Game) Flags() int { return g.flags }
func (g *Game) Found() int { return g.found }
func (g *Game) Status() Status { return g.status }
func (g *Game) Initialized() bool { return g.initialized }

// RequiresQuitConfirmation is true once the player has changed the board
// and the game is still running.
func (g *Game) RequiresQuitConfirmation() bool {
	return g.initialized && !g.status.Over()
}

func (g *Game) won() bool {
	return g.found == g.mines && g.flags == g.found
}

func (g *Game) initialize() {
	if g.initialized {
		return
	}
	g.initialized = true
	g.grid.PlaceMines(g.mines, g.rand)
}

func (g *Game) finish(status Status) {
	g.grid.RevealAll()
	g.status = status
	Log.WithFields(logrus.Fields{
		"status": status,
		"flags":  g.flags,
		"found":  g.found,
		"mines":  g.mines,
	}).Debug("game over\n" + g.grid.ToString())
}

// errNoFlags is returned by ToggleFlag when every flag is already on the board.
var errNoFlags = errors.New("no flags left")

// ToggleFlag flips the flag on a concealed tile. Revealed tiles are left
// alone. The game is won when the flags sit exactly on the mines.
func (g *Game) ToggleFlag(x, y int) error {
	if g.grid.IsRevealed(x, y) {
		return nil
	}
	g.initialize()

	mine := iif(g.grid.IsMine(x, y), 1, 0)
	if g.grid.IsFlagged(x, y) {
		g.grid.SetFlagged(x, y, false)
		g.flags--
		g.found -= mine
	} else {
		if g.flags >= g.mines {
			return errNoFlags
		}
		g.grid.SetFlagged(x, y, true)
		g.flags++
		g.found += mine
	}

	if g.won() {
		g.finish(Won)
	}
	return nil
}

// errFlagged is returned by Open when the target tile carries a flag.
var errFlagged = errors.New("tile is flagged")

// Open reveals x:y. On the very first move a mine under x:y is moved away
// first; neighbouring tiles get no such protection. A reveal leaves the
// counters alone, so it only wins a game that has no mines to flag.
func (g *Game) Open(x, y int) error {
	if !g.initialized {
		g.initialize()
		g.grid.RelocateMine(x, y, g.rand)
	}
	if g.grid.IsFlagged(x, y) {
		return errFlagged
	}
	if !Reveal(g.grid, x, y) {
		g.finish(Lost)
	} else if g.won() {
		g.finish(Won)
	}
	return nil
}

// Quit ends the game. While confirmation is required an unconfirmed quit
// does nothing and Quit returns false.
func (g *Game) Quit(confirmed bool) bool {
	if g.RequiresQuitConfirmation() && !confirmed {
		return false
	}
	g.initialize()
	g.finish(Quit)
	return true
}

// Score grows with the square of correctly flagged mines, scaled by area.
func (g *Game) Score() int {
	return g.found * g.found * 1000 / g.grid.Area()
}

// RenderSnapshot is what a player can see of the board.
type RenderSnapshot struct {
	Width, Height int
	Symbols       []byte
	Flags, Mines  int
}

const (
	SymbolMine   = '*'
	SymbolEmpty  = ' '
	SymbolFlag   = 'F'
	SymbolHidden = '@'
)

func (s RenderSnapshot) At(x, y int) byte {
	return s.Symbols[y*s.Width+x]
}

func (s RenderSnapshot) Row(y int) string {
	return string(s.Symbols[y*s.Width : (y+1)*s.Width])
}

func (g *Game) Snapshot() RenderSnapshot {
	w, h := g.grid.Width(), g.grid.Height()
	symbols := make([]byte, 0, w*h)
	for y := range h {
		for x := range w {
			symbols = append(symbols, g.symbol(x, y))
		}
	}
	return RenderSnapshot{
		Width:   w,
		Height:  h,
		Symbols: symbols,
		Flags:   g.flags,
		Mines:   g.mines,
	}
}

func (g *Game) symbol(x, y int) byte {
	t := g.grid.Tile(x, y)
	switch {
	case t.Revealed && t.Mine:
		return SymbolMine
	case t.Revealed:
		if n := g.grid.AdjacentMines(x, y); n > 0 {
			return byte('0' + n)
		}
		return SymbolEmpty
	case t.Flagged:
		return SymbolFlag
	default:
		return SymbolHidden
	}
}
