package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/termsweeper/internal/mines"
)

const (
	greeting    = "Type a command. For help, type '?' then ENTER."
	quitPrompt  = "Are you sure you want to quit? [yN] "
	tooLongNote = "Command too long; characters after '%c' ignored.\n"
)

// Session plays one game on a line based terminal.
type Session struct {
	ID        string
	game      *mines.Game
	in        io.Reader
	out       io.Writer
	separator string
	log       *logrus.Entry
	lines     *lineReader
}

func NewSession(game *mines.Game, in io.Reader, out io.Writer, separator string, log *logrus.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:        id,
		game:      game,
		in:        in,
		out:       out,
		separator: separator,
		log:       log.WithField("session", id),
	}
}

// Run reads and executes commands until the game ends, the input runs out
// or ctx is cancelled, then prints the score. The last two count as quitting.
func (s *Session) Run(ctx context.Context) (mines.Status, error) {
	s.lines = newLineReader(ctx, s.in)
	s.log.Info("session started")

	if err := s.render(s.game.Snapshot()); err != nil {
		return s.game.Status(), err
	}
	fmt.Fprintln(s.out, greeting)

	var readErr error
	for !s.game.Status().Over() {
		text, err := s.lines.Next(ctx)
		if err != nil {
			if !endOfInput(err) {
				readErr = fmt.Errorf("unable to read command: %w", err)
			}
			s.log.WithError(err).Debug("input ended")
			s.show(s.game.Apply(mines.Command{Kind: mines.CmdQuit, Confirmed: true}))
			break
		}

		cmd, tooLong := splitCommand(text)
		if tooLong {
			fmt.Fprintf(s.out, tooLongNote, cmd[MaxCommand-1])
			continue
		}
		s.show(s.game.Execute(cmd, func() bool { return s.confirmQuit(ctx) }))
	}

	score := s.game.Score()
	fmt.Fprintf(s.out, "Score: %d\n", score)
	s.log.WithFields(logrus.Fields{
		"status": s.game.Status(),
		"score":  score,
	}).Info("session finished")
	return s.game.Status(), readErr
}

// confirmQuit asks before abandoning a game in progress. Only an answer
// starting with y counts as yes, except that running out of input quits.
func (s *Session) confirmQuit(ctx context.Context) bool {
	fmt.Fprint(s.out, quitPrompt)
	answer, err := s.lines.Next(ctx)
	if err != nil {
		return true
	}
	answer = strings.TrimLeftFunc(answer, unicode.IsSpace)
	return answer != "" && unicode.ToLower(rune(answer[0])) == 'y'
}

func (s *Session) show(out mines.Outcome) {
	if out.ShowHelp {
		PrintHelp(s.out)
	}
	if out.ShowBoard {
		if err := s.render(out.Board); err != nil {
			s.log.WithError(err).Warn("unable to draw board")
		}
	}
	if out.Message != "" {
		fmt.Fprintln(s.out, out.Message)
	}
}

func (s *Session) render(board mines.RenderSnapshot) error {
	return RenderBoard(s.out, s.separator, board)
}
