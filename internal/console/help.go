package console

import (
	"fmt"
	"io"

	"github.com/vancomm/termsweeper/internal/mines"
)

const Version = "0.4.7"

const gameOverview = `The purpose of this game is to flag all the mines hidden under tiles on the
board. You must flag the correct tiles, and nothing more, to win. If a tile
has one or more mines adjacent or immediately diagonal, it is displayed as
that number from 1 to 8. Try to reveal tiles which you know to be safe to
isolate the mines.
`

const commandOverview = `Commands are used to interact with the program. A command is an optional
lowercase letter followed by an optional position. A position is a capital
letter indicating a column followed by a positive integer indicating a row.
These quantities must fit within the board.
`

const commandList = `Commands:
  <nothing>    Perform no action and print out the board.
  r<position>  Reveal <position>. If a mine is there, you're dead.
  <position>   Same as r<position>.
  f<position>  Toggle the flag at <position>. Nothing happens if the tile is
               already revealed.
  ?            Print this help information.
  q            Quit the game. You will have to confirm your quitting unless
               you have yet to perform any action.
`

// PrintHelp writes the in-game help.
func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n%s\n%s", gameOverview, commandOverview, commandList)
}

func PrintUsage(w io.Writer, progname string) {
	fmt.Fprintf(w, "Usage: %s [options]\n", progname)
}

func PrintHelpHint(w io.Writer, progname string) {
	fmt.Fprintf(w, "Run `%s -help` for more help.\n", progname)
}

func PrintVersion(w io.Writer, progname string) {
	fmt.Fprintf(w, "%s %s\n", progname, Version)
}

// PrintShellHelp writes the help shown for -help: usage, options and the
// in-game help.
func PrintShellHelp(w io.Writer, progname string) {
	PrintUsage(w, progname)
	fmt.Fprintf(w, `
A mine finding game.

Options:
  -help              Print this help information and exit.
  -version           Print program version information and exit.
  -separator <text>  Print <text> between frames. The default is a few
                     newlines. You can clear the screen between frames with
                     ANSI escape sequences using separator <ESC>[H<ESC>[J.
  -width <number>    Set the board width to <number> (between %d and %d.)
  -height <number>   Set the board height to <number> (between %d and %d.)
  -mines <number>    Set the mine count to <number> (between %d and %d.)
  -seed <number>     Seed the mine layout; 0 picks a random seed.
  -config <path>     Read options from a JSON or YAML file.
  -log-file <path>   Write logs to a rotating file instead of stderr.
  -verbose           Log debugging information.

Options can also be set with MINES_WIDTH, MINES_HEIGHT, MINES_MINES,
MINES_SEPARATOR, MINES_SEED, MINES_LOG_FILE and MINES_VERBOSE.
`,
		mines.MinWidth, mines.MaxWidth,
		mines.MinHeight, mines.MaxHeight,
		mines.MinMines, mines.MaxMines,
	)
	PrintHelp(w)
}
