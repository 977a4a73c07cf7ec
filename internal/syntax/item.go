package syntax

var itemAlts []parseFunc[Item]

func init() {
	itemAlts = []parseFunc[Item]{parseConstItem, parseFuncItem}
}

func parseItem(c *Cursor) (Item, error) {
	return tryAlternatives(c, "item", itemAlts)
}

// parseConstItem parses const NAME [type] = value.
func parseConstItem(c *Cursor) (Item, error) {
	kw, err := c.expect(Keyword, "const")
	if err != nil {
		return nil, err
	}
	name, err := c.expectKind(Identifier)
	if err != nil {
		return nil, err
	}

	d := &Const{Name: name.Value}
	d.pos = kw.Pos()
	d.Type = parseRawType(c, func(t Token) bool { return t.Is(Operator, "=") })
	if _, err := c.expect(Operator, "="); err != nil {
		return nil, err
	}
	if d.Value, err = parseExpr(c); err != nil {
		return nil, err
	}
	if err := expectTerminator(c); err != nil {
		return nil, err
	}
	return d, nil
}

// parseFuncItem parses func name(params) [result] { body }.
// The result is absent exactly when "{" follows the parameter list.
func parseFuncItem(c *Cursor) (Item, error) {
	kw, err := c.expect(Keyword, "func")
	if err != nil {
		return nil, err
	}
	name, err := c.expectKind(Identifier)
	if err != nil {
		return nil, err
	}

	sig := &Signature{Name: name.Value}
	sig.pos = kw.Pos()
	if sig.Params, err = parseList(c, "(", ")", ",", parseParam); err != nil {
		return nil, err
	}
	sig.Result = parseRawType(c, func(t Token) bool { return t.Is(Separator, "{") })

	body, err := parseBlock(c)
	if err != nil {
		return nil, err
	}

	f := &Func{Sig: sig, Body: body}
	f.pos = kw.Pos()
	return f, nil
}

// parseParam parses name type, where the type runs to the next "," or ")".
func parseParam(c *Cursor) (*Param, error) {
	name, err := c.expectKind(Identifier)
	if err != nil {
		return nil, err
	}
	p := &Param{Name: name.Value}
	p.pos = name.Pos()
	p.Type = parseRawType(c, func(t Token) bool {
		return t.Is(Separator, ",") || t.Is(Separator, ")")
	})
	if p.Type == nil {
		return nil, c.errorf(ExpectedStructure, "missing type for parameter %s", p.Name)
	}
	return p, nil
}
