package codegen

import (
	"math"
	"strconv"
	"strings"

	"tinygo.org/x/go-llvm"

	"github.com/you-not-fish/sundae/internal/syntax"
	"github.com/you-not-fish/sundae/internal/types"
)

// genExpr lowers x. A nil Value means x produced nothing (a void call or an
// if expression).
func (g *Generator) genExpr(x syntax.Expr) (*Value, error) {
	switch x := x.(type) {
	case *syntax.BasicLit:
		return g.genLit(x)
	case *syntax.Path:
		return g.genPath(x)
	case *syntax.Unary:
		return g.genUnary(x)
	case *syntax.Binary:
		v, err := g.genBinary(x.Tree)
		if err != nil {
			return nil, err
		}
		return &v, nil
	case *syntax.CallExpr:
		return g.genCall(x)
	case *syntax.IfExpr:
		return nil, g.genIf(x)
	case *syntax.ParenExpr:
		v, err := g.nonVoid(x.X)
		if err != nil {
			return nil, err
		}
		return &v, nil
	case *syntax.ArrayExpr:
		return g.genArray(x)
	case *syntax.TupleExpr:
		return nil, errorf(x.Pos(), Unsupported, "tuple expressions are not supported")
	}
	return nil, errorf(x.Pos(), Internal, "unexpected expression %T", x)
}

func (g *Generator) genLit(lit *syntax.BasicLit) (*Value, error) {
	switch lit.Kind {
	case syntax.StringLit:
		b, err := syntax.StringValue(lit.Value)
		if err != nil {
			return nil, errorf(lit.Pos(), Internal, "%v", err)
		}
		return &Value{
			Type: types.NewArray(types.I8, int64(len(b))),
			V:    g.ctx.ConstString(string(b), false),
		}, nil

	case syntax.RuneLit:
		c, err := syntax.RuneValue(lit.Value)
		if err != nil {
			return nil, errorf(lit.Pos(), Internal, "%v", err)
		}
		return &Value{Type: types.I8, V: llvm.ConstInt(g.ctx.Int8Type(), uint64(c), false)}, nil

	case syntax.IntLit:
		n, err := parseInt(lit.Value)
		if err != nil {
			return nil, errorf(lit.Pos(), Unsupported, "integer literal %s does not fit in i32", lit.Value)
		}
		return &Value{Type: types.I32, V: g.i32(n)}, nil

	case syntax.FloatLit:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil || math.IsInf(f, 0) {
			return nil, errorf(lit.Pos(), Unsupported, "float literal %s out of range", lit.Value)
		}
		return &Value{Type: types.F64, V: llvm.ConstFloat(g.ctx.DoubleType(), f)}, nil
	}
	return nil, errorf(lit.Pos(), Internal, "unexpected literal kind %s", lit.Kind)
}

// parseInt parses an integer literal as the bits of an i32. Prefixed
// literals use their base; all others are decimal.
func parseInt(s string) (uint64, error) {
	base := 10
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		base = 0
	}
	return strconv.ParseUint(s, base, 32)
}

// genPath looks the first segment up among the constants, then the last
// segment in the current stack frame.
func (g *Generator) genPath(p *syntax.Path) (*Value, error) {
	if c, ok := g.rt.Constants[p.First()]; ok {
		return &Value{Type: c.Type, V: c.Global.Initializer()}, nil
	}
	if g.fn != nil {
		if v, ok := g.fn.Stack[p.Last()]; ok {
			return &v, nil
		}
	}
	return nil, errorf(p.Pos(), NotFound, "identifier `%s` not found", p.Last())
}

func (g *Generator) genUnary(u *syntax.Unary) (*Value, error) {
	v, err := g.nonVoid(u.X)
	if err != nil {
		return nil, err
	}

	switch u.Op {
	case syntax.Neg:
		v = g.rvalue(v)
		switch {
		case types.IsInteger(v.Type):
			return &Value{Type: v.Type, V: g.b.CreateNeg(v.V, "neg")}, nil
		case types.IsFloat(v.Type):
			return &Value{Type: v.Type, V: g.b.CreateFNeg(v.V, "neg")}, nil
		}
		return nil, errorf(u.Pos(), Mismatch, "cannot negate `%s`", v.Type)

	case syntax.Deref:
		if v.slot {
			return nil, errorf(u.Pos(), Mismatch, "cannot dereference `%s`", types.Deref(v.Type))
		}
		if !types.IsRef(v.Type) {
			return nil, errorf(u.Pos(), Mismatch, "cannot dereference `%s`", v.Type)
		}
		loaded := g.load(v)
		return &loaded, nil
	}
	return nil, errorf(u.Pos(), Internal, "unexpected unary operator %s", u.Op)
}

func (g *Generator) genCall(call *syntax.CallExpr) (*Value, error) {
	if g.fn == nil {
		return nil, errorf(call.Pos(), Unsupported, "call outside of a function")
	}

	name := call.Fun.Last()
	fn, ok := g.rt.Functions[name]
	if !ok {
		return nil, errorf(call.Pos(), NotFound, "function `%s` not found", name)
	}
	if len(call.Args) != len(fn.Params) {
		return nil, errorf(call.Pos(), Arity, "function `%s` expects %d arguments, got %d",
			name, len(fn.Params), len(call.Args))
	}

	args := make([]llvm.Value, len(call.Args))
	for i, a := range call.Args {
		v, err := g.nonVoid(a)
		if err != nil {
			return nil, err
		}
		if v, err = g.refCast(a.Pos(), v, fn.Params[i].Type); err != nil {
			return nil, err
		}
		args[i] = v.V
	}

	if types.IsVoid(fn.Result) {
		g.b.CreateCall(fn.fnType, fn.fn, args, "")
		return nil, nil
	}
	return &Value{Type: fn.Result, V: g.b.CreateCall(fn.fnType, fn.fn, args, "call")}, nil
}

// genArray fills a stack array element by element and loads it whole.
func (g *Generator) genArray(a *syntax.ArrayExpr) (*Value, error) {
	if g.fn == nil {
		return nil, errorf(a.Pos(), Unsupported, "array literal outside of a function")
	}
	if len(a.Elems) == 0 {
		return nil, errorf(a.Pos(), Unsupported, "empty array literal")
	}

	elems := make([]Value, len(a.Elems))
	for i, e := range a.Elems {
		v, err := g.nonVoid(e)
		if err != nil {
			return nil, err
		}
		elems[i] = g.rvalue(v)
		if i > 0 && !types.Identical(elems[i].Type, elems[0].Type) {
			return nil, errorf(e.Pos(), Mismatch, "array element is `%s`, want `%s`",
				elems[i].Type, elems[0].Type)
		}
	}

	typ := types.NewArray(elems[0].Type, int64(len(elems)))
	lt := g.llvmType(typ)
	slot := g.alloca(typ, "array")
	for i, e := range elems {
		ptr := g.b.CreateGEP(lt, slot, []llvm.Value{g.i32(0), g.i32(uint64(i))}, "")
		g.b.CreateStore(e.V, ptr)
	}
	return &Value{Type: typ, V: g.b.CreateLoad(lt, slot, "")}, nil
}
