package codegen

import (
	"github.com/pkg/errors"
	"tinygo.org/x/go-llvm"

	"github.com/you-not-fish/sundae/internal/rtabi"
	"github.com/you-not-fish/sundae/internal/syntax"
	"github.com/you-not-fish/sundae/internal/types"
)

func (g *Generator) genItem(it syntax.Item) error {
	switch it := it.(type) {
	case *syntax.Func:
		return errors.Wrapf(g.genFunc(it), "in function %q", it.Sig.Name)
	case *syntax.Const:
		return errors.Wrapf(g.genConst(it), "in constant %q", it.Name)
	}
	return errorf(it.Pos(), Internal, "unexpected item %T", it)
}

func (g *Generator) genFunc(f *syntax.Func) error {
	sig := f.Sig
	if g.defined(sig.Name) {
		return errorf(f.Pos(), Unsupported, "`%s` is already defined", sig.Name)
	}
	if call := selfCall(f); call != nil {
		return errorf(call.Pos(), Unsupported, "recursive call to `%s` is not supported", sig.Name)
	}

	fn := &Function{Name: sig.Name, Stack: make(map[string]Value)}
	result, err := types.Resolve(sig.Result)
	if err != nil {
		return errorf(f.Pos(), UnknownType, "%v", err)
	}
	fn.Result = result
	if sig.Name == rtabi.EntryPoint {
		fn.Result = types.I32
	}
	for _, p := range sig.Params {
		t, err := types.Resolve(p.Type)
		if err != nil {
			return errorf(p.Pos(), UnknownType, "%v", err)
		}
		if types.IsVoid(t) {
			return errorf(p.Pos(), Mismatch, "parameter `%s` cannot have type `%s`", p.Name, t)
		}
		fn.Params = append(fn.Params, Param{Name: p.Name, Type: t})
	}

	g.declare(fn)
	g.b.SetInsertPointAtEnd(g.ctx.AddBasicBlock(fn.fn, "entry"))
	g.fn = fn
	defer func() { g.fn = nil }()

	for i, p := range fn.Params {
		arg := fn.fn.Param(i)
		arg.SetName(p.Name)
		if types.IsRef(p.Type) {
			fn.Stack[p.Name] = Value{Type: p.Type, V: arg}
			continue
		}
		slot := g.alloca(p.Type, p.Name+".addr")
		g.b.CreateStore(arg, slot)
		fn.Stack[p.Name] = Value{Type: types.NewRef(p.Type, true), V: slot, slot: true}
	}

	if err := g.genBlock(f.Body); err != nil {
		return err
	}

	if !g.terminated() {
		switch {
		case sig.Name == rtabi.EntryPoint:
			g.b.CreateRet(llvm.ConstNull(g.llvmType(fn.Result)))
		case types.IsVoid(fn.Result):
			g.b.CreateRetVoid()
		case !g.reachable(g.b.GetInsertBlock()):
			g.b.CreateUnreachable()
		default:
			return errorf(f.Pos(), Mismatch, "missing return at the end of `%s`", sig.Name)
		}
	}

	fn.Stack = nil
	g.rt.Functions[fn.Name] = fn
	return nil
}

// selfCall returns the first call in f's body to f itself.
func selfCall(f *syntax.Func) *syntax.CallExpr {
	var found *syntax.CallExpr
	syntax.Walk(f.Body, func(n syntax.Node) bool {
		if found != nil {
			return false
		}
		if call, ok := n.(*syntax.CallExpr); ok && call.Fun.Last() == f.Sig.Name {
			found = call
			return false
		}
		return true
	})
	return found
}

func (g *Generator) genConst(c *syntax.Const) error {
	if g.defined(c.Name) {
		return errorf(c.Pos(), Unsupported, "`%s` is already defined", c.Name)
	}

	v, err := g.nonVoid(c.Value)
	if err != nil {
		return err
	}

	typ := v.Type
	if c.Type != nil {
		if typ, err = types.Resolve(c.Type); err != nil {
			return errorf(c.Pos(), UnknownType, "%v", err)
		}
	}
	if types.IsRef(typ) || types.IsVoid(typ) {
		return errorf(c.Pos(), Unsupported, "constant of type `%s`", typ)
	}
	if v, err = g.refCast(c.Value.Pos(), v, typ); err != nil {
		return err
	}
	if !v.V.IsConstant() {
		return errorf(c.Value.Pos(), Unsupported, "value of `%s` is not a constant", c.Name)
	}

	global := llvm.AddGlobal(g.mod, g.llvmType(typ), c.Name)
	global.SetInitializer(v.V)
	global.SetGlobalConstant(true)
	g.rt.Constants[c.Name] = &Constant{Type: typ, Global: global}
	return nil
}

func (g *Generator) defined(name string) bool {
	if _, ok := g.rt.Functions[name]; ok {
		return true
	}
	_, ok := g.rt.Constants[name]
	return ok
}
