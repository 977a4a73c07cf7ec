package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a character reader with position tracking over a UTF-8 buffer.
type source struct {
	buf []byte // entire file

	filename string
	line     uint32 // line of ch (1-based)
	col      uint32 // column of ch (1-based, byte offset)

	ch     rune // current character, -1 for EOF
	chOffs int  // byte offset of ch
	offs   int  // byte offset just past ch

	errh func(pos Pos, msg string)
}

// newSource reads src fully and positions the reader on its first character.
// errh is called for read and encoding errors; it may be nil.
func newSource(filename string, src io.Reader, errh func(pos Pos, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		col:      0, // nextch moves it to 1
		ch:       -1,
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error("error reading source file: " + err.Error())
		s.buf = nil
	}

	s.nextch()
	return s
}

// nextch advances to the next character and updates the position.
// (line, col) always describe s.ch after nextch returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.chOffs = s.offs
	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}

	s.ch = r
	s.offs += width
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return Pos{filename: s.filename, line: s.line, col: s.col, offs: s.chOffs}
}

// segment returns the raw text from start up to (not including) ch.
func (s *source) segment(start Pos) string {
	return string(s.buf[start.offs:s.chOffs])
}

func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.pos(), msg)
	}
}

// Character classification helpers

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= lower(r) && lower(r) <= 'f'
}

func isOctalDigit(r rune) bool {
	return '0' <= r && r <= '7'
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// lower maps ASCII letters to lowercase and leaves other runes unchanged.
func lower(r rune) rune {
	return ('a' - 'A') | r
}

// isWhitespace reports whether r is insignificant whitespace.
// '\n' is not included: newlines are tokens.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

func isSeparator(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ',', '.', ';':
		return true
	}
	return false
}

func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '&', '|', '^', '<', '>', '=', '!', ':':
		return true
	}
	return false
}
