package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/termsweeper/internal/mines"
)

// RenderBoard draws the board framed by column letters and row numbers,
// preceded by separator and followed by the flag counter:
//
//	     A B C
//	    - - - -
//	 1 |`@`1` `| 1
//	    - - - -
//	     A B C
//	Flags: 0/1
func RenderBoard(w io.Writer, separator string, s mines.RenderSnapshot) error {
	var b strings.Builder
	b.WriteString(separator)
	writeColumns(&b, s.Width)
	writeBorder(&b, s.Width)
	for y := range s.Height {
		fmt.Fprintf(&b, "%2d |", y+1)
		for x := range s.Width {
			b.WriteByte('`')
			b.WriteByte(s.At(x, y))
		}
		fmt.Fprintf(&b, "`| %d\n", y+1)
	}
	writeBorder(&b, s.Width)
	writeColumns(&b, s.Width)
	fmt.Fprintf(&b, "Flags: %d/%d\n", s.Flags, s.Mines)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeColumns(b *strings.Builder, width int) {
	b.WriteString("    ")
	for x := range width {
		b.WriteByte(' ')
		b.WriteByte(mines.Columns[x])
	}
	b.WriteByte('\n')
}

func writeBorder(b *strings.Builder, width int) {
	b.WriteString("    -")
	b.WriteString(strings.Repeat(" -", width))
	b.WriteByte('\n')
}
