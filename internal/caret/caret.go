// Package caret renders a source line with a caret pointing at a token's
// start column, for diagnostics that print an UnexpectedData token or any
// other scanner finding to a terminal.
package caret

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/fr830/hls/token"
)

// Render returns a two-line string: the source line containing pos,
// followed by a line holding a single '^' under the column pos names. The
// caret is offset by display width, not byte or rune count, so it lines
// up correctly under East Asian wide characters and combining marks when
// shown in a monospaced, UTF-8 terminal.
//
// line is the raw text of the line pos.Line refers to, without its
// trailing newline. Render does not validate that pos falls within line;
// a column past the end of the line places the caret past the printed
// text, which is the best a line-oblivious caller can do.
func Render(line string, pos token.Position) string {
	b := runeIndexForColumn(line, pos.Column)
	lead := displayWidth(line[:b])
	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", lead))
	sb.WriteByte('^')
	return sb.String()
}

// runeIndexForColumn converts a 1-based column into a byte offset into
// line, clamped to len(line) so a column one past the last character (as
// EndOfLine and EndOfFile tokens report) still produces a valid slice.
func runeIndexForColumn(line string, column int) int {
	n := column - 1
	if n <= 0 {
		return 0
	}
	i := 0
	for ; n > 0 && i < len(line); n-- {
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return i
}

// displayWidth computes the width in terminal cells of s, assuming a
// monospaced font and a UTF-8 locale. East Asian wide and fullwidth
// characters count as two cells; nonspacing and enclosing combining marks
// count as zero; other ambiguous-width characters count as one, matching a
// non-CJK locale.
func displayWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if !unicode.IsGraphic(r) || unicode.In(r, unicode.Mn, unicode.Me) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w += 1
		}
	}
	return w
}
