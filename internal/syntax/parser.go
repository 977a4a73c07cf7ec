package syntax

import "bytes"

// Parser turns a comment-free token stream into a File.
type Parser struct {
	c    *Cursor
	errh func(pos Pos, msg string)
}

// NewParser creates a Parser over toks. Comment tokens must already have been
// removed (see StripComments). errh, if non-nil, is called with the error
// that stops the parse.
func NewParser(toks []Token, errh func(pos Pos, msg string)) *Parser {
	return &Parser{c: NewCursor(toks), errh: errh}
}

// Parse parses the whole stream as a sequence of items separated by newlines.
// The first item that fails to parse ends the parse.
func (p *Parser) Parse() (*File, error) {
	f := &File{}
	if t, ok := p.c.Peek(); ok {
		f.pos = t.Pos()
	}

	for {
		p.c.IgnoreNewlines()
		if p.c.Done() {
			return f, nil
		}
		it, err := parseItem(p.c)
		if err != nil {
			if e, ok := err.(*Error); ok && p.errh != nil {
				p.errh(e.Pos, e.Msg)
			}
			return nil, err
		}
		f.Items = append(f.Items, it)
	}
}

// ParseFile tokenizes and parses one source file. A trailing newline is
// appended so the last statement is terminated.
func ParseFile(filename string, src []byte) (*File, error) {
	toks, err := Tokenize(filename, withTrailingNewline(src))
	if err != nil {
		return nil, err
	}
	return NewParser(StripComments(toks), nil).Parse()
}

// ParseExpr parses src as a single expression.
func ParseExpr(src string) (Expr, error) {
	toks, err := Tokenize("", []byte(src))
	if err != nil {
		return nil, err
	}
	c := NewCursor(StripComments(toks))
	x, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	c.IgnoreNewlines()
	if !c.Done() {
		return nil, c.errorf(ExpectedStructure, "unexpected %s after expression", c.found())
	}
	return x, nil
}

// ParseStmt parses src as a single statement. A missing terminator is
// supplied.
func ParseStmt(src string) (Stmt, error) {
	toks, err := Tokenize("", withTrailingNewline([]byte(src)))
	if err != nil {
		return nil, err
	}
	c := NewCursor(StripComments(toks))
	s, err := parseStmt(c)
	if err != nil {
		return nil, err
	}
	c.IgnoreNewlines()
	if !c.Done() {
		return nil, c.errorf(ExpectedStructure, "unexpected %s after statement", c.found())
	}
	return s, nil
}

func withTrailingNewline(src []byte) []byte {
	if bytes.HasSuffix(src, []byte("\n")) {
		return src
	}
	out := make([]byte, len(src)+1)
	copy(out, src)
	out[len(src)] = '\n'
	return out
}
