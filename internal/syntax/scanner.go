package syntax

import (
	"bytes"
	"fmt"
	"io"
)

// Scanner splits sundae source text into classified tokens.
type Scanner struct {
	source

	tok  Token
	errs []*Error
	errh func(pos Pos, msg string)
}

// NewScanner creates a Scanner for src.
// errh is called for each lexical error; if nil, errors are only recorded.
func NewScanner(filename string, src io.Reader, errh func(pos Pos, msg string)) *Scanner {
	s := &Scanner{errh: errh}
	s.source = *newSource(filename, src, func(pos Pos, msg string) {
		s.report(pos, InvalidToken, msg)
	})
	return s
}

// Next scans the next token. It returns false at end of input.
func (s *Scanner) Next() bool {
redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	start := s.pos()
	var (
		kind TokenKind
		lit  LitKind
	)

	switch {
	case s.ch < 0:
		return false

	case s.ch == '\n':
		s.nextch()
		kind = Newline

	case isLetter(s.ch):
		for isLetter(s.ch) || isDigit(s.ch) {
			s.nextch()
		}
		kind = LookupIdent(s.segment(start))

	case isDigit(s.ch):
		kind, lit = Literal, s.scanNumber()

	case s.ch == '"':
		kind, lit = Literal, StringLit
		s.scanString()

	case s.ch == '`':
		kind, lit = Literal, RuneLit
		s.scanRune()

	case isSeparator(s.ch):
		s.nextch()
		kind = Separator

	case isOperatorStart(s.ch):
		var ok bool
		if kind, ok = s.scanOperator(start); !ok {
			goto redo
		}

	default:
		s.report(start, InvalidToken, fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}

	s.tok = Token{
		Kind:  kind,
		Lit:   lit,
		Value: s.segment(start),
		Span:  Span{Start: start, End: s.pos()},
	}
	return true
}

// Token returns the most recently scanned token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the first lexical error, or nil.
func (s *Scanner) Err() error {
	if len(s.errs) == 0 {
		return nil
	}
	return s.errs[0]
}

func (s *Scanner) report(pos Pos, kind ErrorKind, msg string) {
	s.errs = append(s.errs, &Error{Pos: pos, Kind: kind, Msg: msg})
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

// scanNumber scans an integer or float literal and returns its kind.
func (s *Scanner) scanNumber() LitKind {
	kind := IntLit

	if s.ch == '0' {
		s.nextch()
		switch lower(s.ch) {
		case 'x':
			s.nextch()
			s.scanDigits(isHexDigit, "hex")
			return kind
		case 'o':
			s.nextch()
			s.scanDigits(isOctalDigit, "octal")
			return kind
		case 'b':
			s.nextch()
			s.scanDigits(isBinaryDigit, "binary")
			if isDigit(s.ch) {
				s.report(s.pos(), InvalidToken, "invalid binary digit")
			}
			return kind
		}
	}

	for isDigit(s.ch) {
		s.nextch()
	}

	if s.ch == '.' {
		kind = FloatLit
		s.nextch()
		for isDigit(s.ch) {
			s.nextch()
		}
	}

	if lower(s.ch) == 'e' {
		kind = FloatLit
		s.nextch()
		if s.ch == '+' || s.ch == '-' {
			s.nextch()
		}
		if !isDigit(s.ch) {
			s.report(s.pos(), InvalidToken, "exponent has no digits")
			return kind
		}
		for isDigit(s.ch) {
			s.nextch()
		}
	}

	return kind
}

func (s *Scanner) scanDigits(valid func(rune) bool, base string) {
	if !valid(s.ch) {
		s.report(s.pos(), InvalidToken, "invalid "+base+" digit")
		return
	}
	for valid(s.ch) {
		s.nextch()
	}
}

// scanString scans a "-delimited string. The literal keeps its raw text;
// escapes are only validated here.
func (s *Scanner) scanString() {
	start := s.pos()
	s.nextch() // opening "

	for {
		switch {
		case s.ch == '"':
			s.nextch()
			return
		case s.ch == '\\':
			s.scanEscape('"')
		case s.ch == '\n' || s.ch < 0:
			s.report(start, UnterminatedLiteral, "string literal not terminated")
			return
		default:
			s.nextch()
		}
	}
}

// scanRune scans a backtick-delimited rune literal holding exactly one character.
func (s *Scanner) scanRune() {
	start := s.pos()
	s.nextch() // opening `

	n := 0
	for {
		switch {
		case s.ch == '`':
			s.nextch()
			switch {
			case n == 0:
				s.report(start, InvalidToken, "empty rune literal")
			case n > 1:
				s.report(start, InvalidToken, "more than one character in rune literal")
			}
			return
		case s.ch == '\\':
			s.scanEscape('`')
		case s.ch == '\n' || s.ch < 0:
			s.report(start, UnterminatedLiteral, "rune literal not terminated")
			return
		default:
			s.nextch()
		}
		n++
	}
}

// scanEscape validates one escape sequence; quote is the enclosing delimiter.
func (s *Scanner) scanEscape(quote rune) {
	pos := s.pos()
	s.nextch() // \

	switch s.ch {
	case 'n', 't', 'r', '\\', '0', quote:
		s.nextch()
	case 'x':
		s.nextch()
		for i := 0; i < 2; i++ {
			if !isHexDigit(s.ch) {
				s.report(pos, InvalidToken, "invalid hex escape")
				return
			}
			s.nextch()
		}
	default:
		if s.ch < 0 || s.ch == '\n' {
			return
		}
		s.report(pos, InvalidToken, fmt.Sprintf("unknown escape sequence: \\%c", s.ch))
		s.nextch()
	}
}

// scanOperator scans an operator or a // comment starting at start.
// It returns false if no valid token was produced.
func (s *Scanner) scanOperator(start Pos) (TokenKind, bool) {
	ch := s.ch
	s.nextch()

	switch ch {
	case '/':
		if s.ch == '/' {
			for s.ch != '\n' && s.ch >= 0 {
				s.nextch()
			}
			return Comment, true
		}
		s.optional('=')
	case '+', '-', '*', '&', '|', '^', '=', '!':
		s.optional('=')
	case '<', '>':
		if s.ch == ch {
			s.nextch()
		}
		s.optional('=')
	case ':':
		if s.ch != '=' {
			s.report(start, InvalidToken, "unexpected character ':'")
			return 0, false
		}
		s.nextch()
	}
	return Operator, true
}

func (s *Scanner) optional(ch rune) {
	if s.ch == ch {
		s.nextch()
	}
}

// ----------------------------------------------------------------------------
// Token stream helpers

// Tokenize scans src completely and returns the token stream, or the first
// lexical error.
func Tokenize(filename string, src []byte) ([]Token, error) {
	s := NewScanner(filename, bytes.NewReader(src), nil)
	var toks []Token
	for s.Next() {
		toks = append(toks, s.Token())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}

// StripComments returns toks without Comment tokens.
func StripComments(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != Comment {
			out = append(out, t)
		}
	}
	return out
}
