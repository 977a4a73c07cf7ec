package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		for _, it := range n.Items {
			Walk(it, v)
		}

	case *Const:
		if n.Type != nil {
			Walk(n.Type, v)
		}
		Walk(n.Value, v)

	case *Func:
		Walk(n.Sig, v)
		Walk(n.Body, v)

	case *Signature:
		for _, p := range n.Params {
			Walk(p, v)
		}
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *Param:
		Walk(n.Type, v)

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *ExprStmt:
		Walk(n.X, v)

	case *AssignStmt:
		Walk(n.Dst, v)
		Walk(n.Src, v)

	case *LocalStmt:
		if n.Type != nil {
			Walk(n.Type, v)
		}
		if n.Init != nil {
			Walk(n.Init, v)
		}

	case *Unary:
		Walk(n.X, v)

	case *Binary:
		Walk(n.Tree, v)

	case *Scalar:
		Walk(n.X, v)

	case *Compound:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *IfExpr:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *ParenExpr:
		Walk(n.X, v)

	case *TupleExpr:
		for _, e := range n.Elems {
			Walk(e, v)
		}

	case *ArrayExpr:
		for _, e := range n.Elems {
			Walk(e, v)
		}

	case *RawType, *BasicLit, *Path:
		// leaves
	}
}
