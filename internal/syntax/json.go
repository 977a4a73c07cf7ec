package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

type object = map[string]interface{}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		return object{
			"type":  "File",
			"pos":   n.pos.String(),
			"items": mapSlice(n.Items, func(it Item) interface{} { return toJSON(it) }),
		}

	case *Const:
		return object{
			"type":    "Const",
			"pos":     n.pos.String(),
			"name":    n.Name,
			"valtype": rawTypeJSON(n.Type),
			"value":   toJSON(n.Value),
		}

	case *Func:
		return object{
			"type":   "Func",
			"pos":    n.pos.String(),
			"name":   n.Sig.Name,
			"params": mapSlice(n.Sig.Params, func(p *Param) interface{} { return toJSON(p) }),
			"result": rawTypeJSON(n.Sig.Result),
			"body":   toJSON(n.Body),
		}

	case *Param:
		return object{
			"name":    n.Name,
			"valtype": rawTypeJSON(n.Type),
		}

	case *Block:
		return object{
			"type":  "Block",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	case *ReturnStmt:
		m := object{"type": "ReturnStmt", "pos": n.pos.String()}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *ExprStmt:
		return object{"type": "ExprStmt", "pos": n.pos.String(), "x": toJSON(n.X)}

	case *AssignStmt:
		return object{
			"type": "AssignStmt",
			"pos":  n.pos.String(),
			"dst":  toJSON(n.Dst),
			"src":  toJSON(n.Src),
		}

	case *LocalStmt:
		m := object{
			"type":    "LocalStmt",
			"pos":     n.pos.String(),
			"name":    n.Name,
			"mutable": n.Mutable,
			"valtype": rawTypeJSON(n.Type),
		}
		if n.Init != nil {
			m["init"] = toJSON(n.Init)
		}
		return m

	case *BasicLit:
		return object{
			"type":  "BasicLit",
			"pos":   n.pos.String(),
			"kind":  n.Kind.String(),
			"value": n.Value,
		}

	case *Path:
		return object{"type": "Path", "pos": n.pos.String(), "segments": n.Segments}

	case *Unary:
		return object{
			"type": "Unary",
			"pos":  n.pos.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}

	case *Binary:
		return object{"type": "Binary", "pos": n.pos.String(), "tree": toJSON(n.Tree)}

	case *Scalar:
		return toJSON(n.X)

	case *Compound:
		return object{
			"type": "Compound",
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *CallExpr:
		return object{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"fun":  n.Fun.Segments,
			"args": mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) }),
		}

	case *IfExpr:
		m := object{
			"type": "IfExpr",
			"pos":  n.pos.String(),
			"cond": toJSON(n.Cond),
			"then": toJSON(n.Then),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *ParenExpr:
		return object{"type": "ParenExpr", "pos": n.pos.String(), "x": toJSON(n.X)}

	case *TupleExpr:
		return object{
			"type":  "TupleExpr",
			"pos":   n.pos.String(),
			"elems": mapSlice(n.Elems, func(e Expr) interface{} { return toJSON(e) }),
		}

	case *ArrayExpr:
		return object{
			"type":  "ArrayExpr",
			"pos":   n.pos.String(),
			"elems": mapSlice(n.Elems, func(e Expr) interface{} { return toJSON(e) }),
		}
	}

	return object{"type": "Unknown"}
}

func rawTypeJSON(t *RawType) interface{} {
	if t == nil {
		return nil
	}
	return t.Tokens
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
