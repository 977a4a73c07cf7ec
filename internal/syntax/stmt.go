package syntax

// Statement productions in the order they are tried.
var stmtAlts []parseFunc[Stmt]

func init() {
	stmtAlts = []parseFunc[Stmt]{
		parseReturn,
		parseAssign,
		parseLocal,
		parseExprStmt,
	}
}

// parseStmt parses one statement including its terminator.
func parseStmt(c *Cursor) (Stmt, error) {
	return tryAlternatives(c, "statement", stmtAlts)
}

func isTerminator(t Token) bool {
	return t.Kind == Newline || t.Is(Separator, ";")
}

// expectTerminator consumes a newline or ";". Requiring it keeps a statement
// form from matching only a prefix of a longer statement.
func expectTerminator(c *Cursor) error {
	if _, ok := c.ConsumeIf(isTerminator); ok {
		return nil
	}
	return c.errorf(ExpectedTokenType, "expected newline or \";\", found %s", c.found())
}

// parseReturn parses ret [expr].
func parseReturn(c *Cursor) (Stmt, error) {
	kw, err := c.expect(Keyword, "ret")
	if err != nil {
		return nil, err
	}
	s := &ReturnStmt{}
	s.pos = kw.Pos()

	if t, ok := c.Peek(); ok && !isTerminator(t) {
		if s.Result, err = parseExpr(c); err != nil {
			return nil, err
		}
	}
	if err := expectTerminator(c); err != nil {
		return nil, err
	}
	return s, nil
}

// parseAssign parses dst = src.
func parseAssign(c *Cursor) (Stmt, error) {
	dst, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	if _, err := c.expect(Operator, "="); err != nil {
		return nil, err
	}
	src, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	if err := expectTerminator(c); err != nil {
		return nil, err
	}
	s := &AssignStmt{Dst: dst, Src: src}
	s.pos = dst.Pos()
	return s, nil
}

// parseLocal parses val name [mut] [type] [= init].
func parseLocal(c *Cursor) (Stmt, error) {
	kw, err := c.expect(Keyword, "val")
	if err != nil {
		return nil, err
	}
	name, err := c.expectKind(Identifier)
	if err != nil {
		return nil, err
	}

	s := &LocalStmt{Name: name.Value}
	s.pos = kw.Pos()
	if _, ok := c.consume(Keyword, "mut"); ok {
		s.Mutable = true
	}
	s.Type = parseRawType(c, func(t Token) bool {
		return t.Is(Operator, "=") || isTerminator(t)
	})
	if _, ok := c.consume(Operator, "="); ok {
		if s.Init, err = parseExpr(c); err != nil {
			return nil, err
		}
	}
	if err := expectTerminator(c); err != nil {
		return nil, err
	}
	return s, nil
}

func parseExprStmt(c *Cursor) (Stmt, error) {
	x, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	if err := expectTerminator(c); err != nil {
		return nil, err
	}
	s := &ExprStmt{X: x}
	s.pos = x.Pos()
	return s, nil
}
