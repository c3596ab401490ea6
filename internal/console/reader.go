package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"unicode"
)

// MaxCommand is the longest command accepted, not counting leading blanks.
const MaxCommand = 7

type line struct {
	text string
	err  error
}

// lineReader hands out input lines one at a time. The actual reading happens
// in a goroutine so that a pending read can be abandoned when the context is
// cancelled; that goroutine stays blocked on the input until it returns.
type lineReader struct {
	lines chan line
}

func newLineReader(ctx context.Context, r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan line)}
	go lr.run(ctx, bufio.NewReader(r))
	return lr
}

func (lr *lineReader) run(ctx context.Context, br *bufio.Reader) {
	defer close(lr.lines)
	for {
		text, err := br.ReadString('\n')
		if text != "" {
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			if strings.TrimLeftFunc(text, unicode.IsSpace) != "" || err == nil {
				if !lr.send(ctx, line{text: text}) {
					return
				}
			}
		}
		if err != nil {
			lr.send(ctx, line{err: err})
			return
		}
	}
}

func (lr *lineReader) send(ctx context.Context, l line) bool {
	select {
	case lr.lines <- l:
		return true
	case <-ctx.Done():
		return false
	}
}

// Next returns the next line without its terminator, io.EOF at the end of
// the input, or the context error.
func (lr *lineReader) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-lr.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// splitCommand strips leading blanks from a line and reports whether what
// remains is longer than MaxCommand.
func splitCommand(text string) (cmd string, tooLong bool) {
	cmd = strings.TrimLeftFunc(text, unicode.IsSpace)
	return cmd, len(cmd) > MaxCommand
}

// endOfInput is true for the errors that simply mean no more commands.
func endOfInput(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
