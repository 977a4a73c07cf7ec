package syntax

// Expression productions in the order they are tried.
var (
	exprAlts    []parseFunc[Expr] // every expression form
	operandAlts []parseFunc[Expr] // every form except binary
)

func init() {
	ifAlt := func(c *Cursor) (Expr, error) { return memoized(c, ruleIf, parseIf) }
	operandAlts = []parseFunc[Expr]{
		ifAlt,
		parseUnary,
		parseLiteral,
		parseCall,
		parsePath,
		parseParen,
		parseTuple,
		parseArray,
	}
	exprAlts = []parseFunc[Expr]{ifAlt, parseBinary}
	exprAlts = append(exprAlts, operandAlts[1:]...)
}

// parseExpr parses any expression.
func parseExpr(c *Cursor) (Expr, error) {
	return memoized(c, ruleExpr, func(c *Cursor) (Expr, error) {
		return tryAlternatives(c, "expression", exprAlts)
	})
}

// parseOperand parses any expression that is not itself binary.
func parseOperand(c *Cursor) (Expr, error) {
	return memoized(c, ruleOperand, func(c *Cursor) (Expr, error) {
		return tryAlternatives(c, "operand", operandAlts)
	})
}

// ----------------------------------------------------------------------------
// Binary expressions
//
// Three tiers: a term is an operand, a factor chains terms with * and /,
// and the top tier chains factors with every other binary operator.
// Chains associate to the left.

// parseBinary parses a binary expression. A chain that consumed no operator
// is rejected so that the plain operand forms handle it.
func parseBinary(c *Cursor) (Expr, error) {
	start := c.Clone()
	tree, err := parseChain(c, termOps, parseFactor)
	if err != nil {
		return nil, err
	}
	if _, ok := tree.(*Scalar); ok {
		return nil, start.errorf(ExpectedStructure, "expected binary expression")
	}
	b := &Binary{Tree: tree}
	b.pos = tree.Pos()
	return b, nil
}

func parseFactor(c *Cursor) (BinaryNode, error) {
	return parseChain(c, factorOps, parseTerm)
}

func parseTerm(c *Cursor) (BinaryNode, error) {
	x, err := parseOperand(c)
	if err != nil {
		return nil, err
	}
	s := &Scalar{X: x}
	s.pos = x.Pos()
	return s, nil
}

// parseChain parses next (op next)* for the operators in ops.
func parseChain(c *Cursor, ops map[string]Op, next parseFunc[BinaryNode]) (BinaryNode, error) {
	x, err := next(c)
	if err != nil {
		return nil, err
	}
	for {
		t, ok := c.Peek()
		if !ok || t.Kind != Operator {
			return x, nil
		}
		op, ok := ops[t.Value]
		if !ok {
			return x, nil
		}
		c.Next()

		y, err := next(c)
		if err != nil {
			return nil, err
		}
		n := &Compound{X: x, Op: op, Y: y}
		n.pos = x.Pos()
		x = n
	}
}

// ----------------------------------------------------------------------------
// Operands

// parseUnary parses -x or *x. Any other leading operator is illegal.
func parseUnary(c *Cursor) (Expr, error) {
	t, ok := c.Peek()
	if !ok || t.Kind != Operator {
		return nil, c.errorf(ExpectedTokenType, "expected unary operator, found %s", c.found())
	}
	op, ok := unaryOps[t.Value]
	if !ok {
		return nil, c.errorf(IllegalUnary, "illegal unary operator %q", t.Value)
	}
	c.Next()

	x, err := parseOperand(c)
	if err != nil {
		return nil, err
	}
	u := &Unary{Op: op, X: x}
	u.pos = t.Pos()
	return u, nil
}

func parseLiteral(c *Cursor) (Expr, error) {
	t, err := c.expectKind(Literal)
	if err != nil {
		return nil, err
	}
	lit := &BasicLit{Value: t.Value, Kind: t.Lit}
	lit.pos = t.Pos()
	return lit, nil
}

// parsePathOnly parses ident ("." ident)*.
func parsePathOnly(c *Cursor) (*Path, error) {
	t, err := c.expectKind(Identifier)
	if err != nil {
		return nil, err
	}
	p := &Path{Segments: []string{t.Value}}
	p.pos = t.Pos()
	for {
		if _, ok := c.consume(Separator, "."); !ok {
			return p, nil
		}
		seg, err := c.expectKind(Identifier)
		if err != nil {
			return nil, err
		}
		p.Segments = append(p.Segments, seg.Value)
	}
}

func parsePath(c *Cursor) (Expr, error) {
	p, err := parsePathOnly(c)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// parseCall parses a path immediately followed by an argument list.
func parseCall(c *Cursor) (Expr, error) {
	fun, err := parsePathOnly(c)
	if err != nil {
		return nil, err
	}
	if !c.peekIs(Separator, "(") {
		return nil, c.errorf(ExpectedTokenValue, "expected \"(\" after %s, found %s", fun, c.found())
	}
	args, err := parseList(c, "(", ")", ",", parseExpr)
	if err != nil {
		return nil, err
	}
	call := &CallExpr{Fun: fun, Args: args}
	call.pos = fun.Pos()
	return call, nil
}

// parseIf parses if cond { ... } [else { ... }]. Newlines are allowed around
// the condition and around else.
func parseIf(c *Cursor) (Expr, error) {
	kw, err := c.expect(Keyword, "if")
	if err != nil {
		return nil, err
	}
	c.IgnoreNewlines()

	cond, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	c.IgnoreNewlines()

	then, err := parseBlock(c)
	if err != nil {
		return nil, err
	}

	x := &IfExpr{Cond: cond, Then: then}
	x.pos = kw.Pos()

	// Only commit to the skipped newlines if an else follows; otherwise
	// they terminate the enclosing statement.
	look := c.Clone()
	look.IgnoreNewlines()
	if _, ok := look.consume(Keyword, "else"); !ok {
		return x, nil
	}
	look.IgnoreNewlines()
	if x.Else, err = parseBlock(look); err != nil {
		return nil, err
	}
	c.pos = look.pos
	return x, nil
}

func parseParen(c *Cursor) (Expr, error) {
	open, err := c.expect(Separator, "(")
	if err != nil {
		return nil, err
	}
	c.IgnoreNewlines()
	x, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	c.IgnoreNewlines()
	if _, err := c.expect(Separator, ")"); err != nil {
		return nil, err
	}
	p := &ParenExpr{X: x}
	p.pos = open.Pos()
	return p, nil
}

// parseTuple parses a parenthesized list that is not a single parenthesized
// expression: () or (a, b, ...).
func parseTuple(c *Cursor) (Expr, error) {
	pos := c.position()
	elems, err := parseList(c, "(", ")", ",", parseExpr)
	if err != nil {
		return nil, err
	}
	if len(elems) == 1 {
		return nil, c.errorf(ExpectedStructure, "one-element tuple")
	}
	t := &TupleExpr{Elems: elems}
	t.pos = pos
	return t, nil
}

func parseArray(c *Cursor) (Expr, error) {
	pos := c.position()
	elems, err := parseList(c, "[", "]", ",", parseExpr)
	if err != nil {
		return nil, err
	}
	a := &ArrayExpr{Elems: elems}
	a.pos = pos
	return a, nil
}
