package syntax

// parseFunc is one grammar production. It advances c on success; on failure
// the position of c is unspecified.
type parseFunc[T any] func(c *Cursor) (T, error)

// Memoized expression rules.
const (
	ruleExpr uint8 = iota
	ruleOperand
	ruleIf
)

type memoKey struct {
	rule uint8
	pos  int
}

type memoEntry struct {
	x   Expr
	end int
	err error
}

// memoized runs f at c once per rule and start index. Later calls replay the
// cached node or error and move c to where the first run stopped.
func memoized(c *Cursor, rule uint8, f parseFunc[Expr]) (Expr, error) {
	key := memoKey{rule, c.pos}
	if e, ok := c.memo[key]; ok {
		c.pos = e.end
		return e.x, e.err
	}
	x, err := f(c)
	c.memo[key] = memoEntry{x: x, end: c.pos, err: err}
	return x, err
}

// tryAlternatives runs each production against a clone of c in order and
// commits to the first that succeeds, advancing c to where that trial
// stopped. Productions are pure over the cursor, so adopting the trial's
// position gives the same result as parsing again on c.
//
// If no production matches, the most informative failure is returned: the
// one that got furthest into the input, else an expected-structure error
// naming what.
func tryAlternatives[T any](c *Cursor, what string, alts []parseFunc[T]) (T, error) {
	var best *Error
	for _, alt := range alts {
		trial := c.Clone()
		v, err := alt(trial)
		if err == nil {
			c.pos = trial.pos
			return v, nil
		}
		e, ok := err.(*Error)
		if !ok {
			var zero T
			return zero, err
		}
		if e.further(best) {
			best = e
		}
	}

	var zero T
	if best != nil && (best.at > c.pos || best.Kind > ExpectedStructure) {
		return zero, best
	}
	return zero, c.errorf(ExpectedStructure, "expected %s, found %s", what, c.found())
}

// parseList parses open item (sep item)* close. Newlines are ignored before
// every item, before close, and after every separator. A separator must be
// followed by an item, so trailing and leading separators fail.
func parseList[T any](c *Cursor, open, close, sep string, item parseFunc[T]) ([]T, error) {
	if _, err := c.expect(Separator, open); err != nil {
		return nil, err
	}

	var items []T
	for {
		c.IgnoreNewlines()
		if _, ok := c.consume(Separator, close); ok {
			return items, nil
		}
		if len(items) > 0 {
			if _, err := c.expect(Separator, sep); err != nil {
				return nil, err
			}
			c.IgnoreNewlines()
		}
		x, err := item(c)
		if err != nil {
			return nil, err
		}
		items = append(items, x)
	}
}

// parseBlock parses { stmt* }.
func parseBlock(c *Cursor) (*Block, error) {
	open, err := c.expect(Separator, "{")
	if err != nil {
		return nil, err
	}

	b := &Block{}
	b.pos = open.Pos()
	for {
		c.IgnoreNewlines()
		if _, ok := c.consume(Separator, "}"); ok {
			return b, nil
		}
		if c.Done() {
			return nil, c.errorf(ExpectedTokenValue, "expected \"}\", found end of input")
		}
		s, err := parseStmt(c)
		if err != nil {
			return nil, err
		}
		b.Stmts = append(b.Stmts, s)
	}
}

// parseRawType collects the text of tokens up to, not including, the first
// token for which stop holds, or a newline.
func parseRawType(c *Cursor, stop func(Token) bool) *RawType {
	t, ok := c.Peek()
	if !ok {
		return nil
	}
	rt := &RawType{}
	rt.pos = t.Pos()
	for {
		t, ok := c.ConsumeIf(func(t Token) bool {
			return t.Kind != Newline && !stop(t)
		})
		if !ok {
			break
		}
		rt.Tokens = append(rt.Tokens, t.Value)
	}
	if len(rt.Tokens) == 0 {
		return nil
	}
	return rt
}
