package mines

import (
	"errors"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
)

type CommandKind int

const (
	CmdNoOp CommandKind = iota
	CmdFlag
	CmdReveal
	CmdHelp
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdNoOp:
		return "noop"
	case CmdFlag:
		return "flag"
	case CmdReveal:
		return "reveal"
	case CmdHelp:
		return "help"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed player command. X and Y are zero-based and already
// checked against the board. Confirmed carries the player's answer when a
// quit has to be confirmed.
type Command struct {
	Kind      CommandKind
	X, Y      int
	Confirmed bool
}

const (
	MsgWon     = "All mines found! You win!"
	MsgLost    = "You hit a mine! Game over."
	MsgQuit    = "Game quit."
	MsgUnflag  = "Unflag the space before you reveal it."
	MsgNoFlags = "No flags left; remove one first."
	MsgInvalid = "Invalid command. Use command '?' for help."
)

// ParseCommand reads one command line:
//
//	<empty>       no-op, show the board
//	r<position>   reveal
//	<position>    reveal
//	f<position>   toggle flag
//	h, ?          help
//	q             quit
//
// A position is a column letter followed by a 1-based row number, e.g. C12.
func ParseCommand(input string, width, height int) (Command, error) {
	if input == "" {
		return Command{Kind: CmdNoOp}, nil
	}
	kind := CmdReveal
	pos := input
	switch input[0] {
	case 'f':
		kind, pos = CmdFlag, input[1:]
	case 'h', '?':
		return Command{Kind: CmdHelp}, nil
	case 'q':
		return Command{Kind: CmdQuit}, nil
	case 'r':
		pos = input[1:]
	}
	x, y, err := parsePosition(pos, width, height)
	if err != nil {
		return Command{}, &ParseError{Input: input, Reason: err.Error()}
	}
	return Command{Kind: kind, X: x, Y: y}, nil
}

func parsePosition(pos string, width, height int) (x, y int, err error) {
	if pos == "" {
		return 0, 0, errors.New("missing position")
	}
	x = strings.IndexRune(Columns, unicode.ToUpper(rune(pos[0])))
	if x < 0 || x >= width {
		return 0, 0, errors.New("column out of range")
	}
	y = Atoi(pos[1:]) - 1
	if y < 0 || y >= height {
		return 0, 0, errors.New("row out of range")
	}
	return x, y, nil
}

// Atoi parses a leading decimal number the way C's atoi does: blanks and a
// sign are accepted up front, anything after the digits is ignored, and a
// string without digits is 0.
func Atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			break
		}
		// Saturate; the result is range-checked by the caller anyway.
		if n < 1<<20 {
			n = n*10 + int(c-'0')
		}
	}
	return iif(neg, -n, n)
}

// Outcome is what a command did and what should be shown for it.
type Outcome struct {
	Board     RenderSnapshot
	Status    Status
	Message   string
	ShowBoard bool
	ShowHelp  bool
}

// Apply runs cmd against the game. Commands sent after the game has ended
// change nothing.
func (g *Game) Apply(cmd Command) Outcome {
	var out Outcome
	if g.status.Over() {
		out.Status, out.Board = g.status, g.Snapshot()
		return out
	}

	switch cmd.Kind {
	case CmdNoOp:
		out.ShowBoard = true
	case CmdFlag:
		if err := g.ToggleFlag(cmd.X, cmd.Y); errors.Is(err, errNoFlags) {
			out.Message = MsgNoFlags
		} else {
			out.ShowBoard = true
			out.Message = iif(g.status == Won, MsgWon, "")
		}
	case CmdReveal:
		if err := g.Open(cmd.X, cmd.Y); errors.Is(err, errFlagged) {
			out.Message = MsgUnflag
		} else {
			out.ShowBoard = true
			switch g.status {
			case Lost:
				out.Message = MsgLost
			case Won:
				out.Message = MsgWon
			}
		}
	case CmdHelp:
		out.ShowHelp = true
	case CmdQuit:
		if g.Quit(cmd.Confirmed) {
			out.ShowBoard = true
			out.Message = MsgQuit
		}
	default:
		out.Message = MsgInvalid
	}

	out.Status, out.Board = g.status, g.Snapshot()
	Log.WithFields(logrus.Fields{
		"command": cmd.Kind,
		"x":       cmd.X,
		"y":       cmd.Y,
		"status":  out.Status,
	}).Debug("command applied")
	return out
}

// Execute parses input and applies it. confirm is asked only when quitting
// needs the player's confirmation; a nil confirm declines.
func (g *Game) Execute(input string, confirm func() bool) Outcome {
	cmd, err := ParseCommand(input, g.grid.Width(), g.grid.Height())
	if err != nil {
		Log.WithError(err).Debug("command rejected")
		return Outcome{Status: g.status, Board: g.Snapshot(), Message: MsgInvalid}
	}
	if cmd.Kind == CmdQuit && g.RequiresQuitConfirmation() && confirm != nil {
		cmd.Confirmed = confirm()
	}
	return g.Apply(cmd)
}
