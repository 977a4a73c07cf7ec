package syntax

import "fmt"

// Cursor is a position in a token stream. The stream is shared and never
// mutated, so Clone is O(1) and clones advance independently. Clones also
// share the memo table of the parse they belong to.
type Cursor struct {
	toks []Token
	pos  int
	memo map[memoKey]memoEntry
}

// NewCursor returns a cursor at the start of toks.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks, memo: make(map[memoKey]memoEntry)}
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{toks: c.toks, pos: c.pos, memo: c.memo}
}

// Peek returns the next token without consuming it.
func (c *Cursor) Peek() (Token, bool) {
	if c.pos >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[c.pos], true
}

// Next consumes and returns the next token.
func (c *Cursor) Next() (Token, bool) {
	t, ok := c.Peek()
	if ok {
		c.pos++
	}
	return t, ok
}

// ConsumeIf consumes the next token iff pred holds for it.
func (c *Cursor) ConsumeIf(pred func(Token) bool) (Token, bool) {
	t, ok := c.Peek()
	if !ok || !pred(t) {
		return Token{}, false
	}
	c.pos++
	return t, true
}

// IgnoreNewlines skips any run of Newline tokens.
func (c *Cursor) IgnoreNewlines() {
	for c.pos < len(c.toks) && c.toks[c.pos].Kind == Newline {
		c.pos++
	}
}

// Done reports whether the stream is exhausted.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.toks)
}

// Index returns the number of tokens consumed so far.
func (c *Cursor) Index() int {
	return c.pos
}

// ----------------------------------------------------------------------------
// Token matching

func (c *Cursor) consume(kind TokenKind, value string) (Token, bool) {
	return c.ConsumeIf(func(t Token) bool { return t.Is(kind, value) })
}

func (c *Cursor) peekIs(kind TokenKind, value string) bool {
	t, ok := c.Peek()
	return ok && t.Is(kind, value)
}

// expectKind consumes a token of the given kind.
func (c *Cursor) expectKind(kind TokenKind) (Token, error) {
	if t, ok := c.ConsumeIf(func(t Token) bool { return t.Kind == kind }); ok {
		return t, nil
	}
	return Token{}, c.errorf(ExpectedTokenType, "expected %s, found %s", kind, c.found())
}

// expect consumes a token of the given kind and raw value.
func (c *Cursor) expect(kind TokenKind, value string) (Token, error) {
	if t, ok := c.consume(kind, value); ok {
		return t, nil
	}
	if t, ok := c.Peek(); ok && t.Kind == kind {
		return Token{}, c.errorf(ExpectedTokenValue, "expected %q, found %q", value, t.Value)
	}
	return Token{}, c.errorf(ExpectedTokenType, "expected %s %q, found %s", kind, value, c.found())
}

func (c *Cursor) found() string {
	t, ok := c.Peek()
	switch {
	case !ok:
		return "end of input"
	case t.Kind == Newline:
		return "newline"
	}
	return fmt.Sprintf("%q", t.Value)
}

// position returns the position of the next token, or the end of the last one.
func (c *Cursor) position() Pos {
	if t, ok := c.Peek(); ok {
		return t.Pos()
	}
	if n := len(c.toks); n > 0 {
		return c.toks[n-1].Span.End
	}
	return Pos{}
}

func (c *Cursor) errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Pos:  c.position(),
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		at:   c.pos,
	}
}
