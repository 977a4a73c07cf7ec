package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/you-not-fish/sundae/internal/rtabi"
	"github.com/you-not-fish/sundae/internal/syntax"
	"github.com/you-not-fish/sundae/internal/types"
)

func (g *Generator) genBlock(b *syntax.Block) error {
	for _, s := range b.Stmts {
		if g.terminated() {
			// Code after a return gets a block of its own so the
			// current one keeps a single terminator.
			g.b.SetInsertPointAtEnd(g.ctx.AddBasicBlock(g.fn.fn, "dead"))
		}
		if err := g.genStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) genStmt(s syntax.Stmt) error {
	switch s := s.(type) {
	case *syntax.ReturnStmt:
		return g.genReturn(s)
	case *syntax.ExprStmt:
		_, err := g.genExpr(s.X)
		return err
	case *syntax.AssignStmt:
		return g.genAssign(s)
	case *syntax.LocalStmt:
		return g.genLocal(s)
	}
	return errorf(s.Pos(), Internal, "unexpected statement %T", s)
}

func (g *Generator) genReturn(s *syntax.ReturnStmt) error {
	fn := g.fn
	if s.Result == nil {
		switch {
		case types.IsVoid(fn.Result):
			g.b.CreateRetVoid()
		case fn.Name == rtabi.EntryPoint:
			g.b.CreateRet(llvm.ConstNull(g.llvmType(fn.Result)))
		default:
			return errorf(s.Pos(), Mismatch, "missing return value of type `%s`", fn.Result)
		}
		return nil
	}

	v, err := g.nonVoid(s.Result)
	if err != nil {
		return err
	}
	if types.IsVoid(fn.Result) {
		return errorf(s.Pos(), Mismatch, "function `%s` does not return a value", fn.Name)
	}
	if v, err = g.refCast(s.Result.Pos(), v, fn.Result); err != nil {
		return err
	}
	g.b.CreateRet(v.V)
	return nil
}

// genAssign stores the source value into the storage the destination
// refers to.
func (g *Generator) genAssign(s *syntax.AssignStmt) error {
	dst, err := g.nonVoid(s.Dst)
	if err != nil {
		return err
	}
	if !types.IsMutRef(dst.Type) {
		return errorf(s.Dst.Pos(), Mismatch, "cannot assign to `%s`", dst.Type)
	}

	src, err := g.nonVoid(s.Src)
	if err != nil {
		return err
	}
	if src, err = g.refCast(s.Src.Pos(), src, types.Deref(dst.Type)); err != nil {
		return err
	}
	g.b.CreateStore(src.V, dst.V)
	return nil
}

// genLocal declares a local. Its type is the annotation, or else the
// initializer's type without its reference. Reference-typed locals bind the
// coerced initializer directly; all others get their own stack slot.
func (g *Generator) genLocal(s *syntax.LocalStmt) error {
	var typ types.Type
	if s.Type != nil {
		t, err := types.Resolve(s.Type)
		if err != nil {
			return errorf(s.Pos(), UnknownType, "%v", err)
		}
		typ = t
	}

	var init *Value
	if s.Init != nil {
		v, err := g.nonVoid(s.Init)
		if err != nil {
			return err
		}
		init = &v
	}

	if typ == nil {
		if init == nil {
			return errorf(s.Pos(), UnknownType, "cannot infer the type of `%s` without an initializer", s.Name)
		}
		typ = types.Deref(init.Type)
	}
	if types.IsVoid(typ) {
		return errorf(s.Pos(), Mismatch, "local `%s` cannot have type `%s`", s.Name, typ)
	}

	if types.IsRef(typ) {
		if init == nil {
			return errorf(s.Pos(), Mismatch, "reference `%s` needs an initializer", s.Name)
		}
		v, err := g.refCast(s.Init.Pos(), *init, typ)
		if err != nil {
			return err
		}
		v.slot = false
		g.fn.Stack[s.Name] = v
		return nil
	}

	slot := g.alloca(typ, s.Name)
	if init != nil {
		v, err := g.refCast(s.Init.Pos(), *init, typ)
		if err != nil {
			return err
		}
		g.b.CreateStore(v.V, slot)
	}
	g.fn.Stack[s.Name] = Value{Type: types.NewRef(typ, true), V: slot, slot: true}
	return nil
}

// genIf lowers an if expression. The condition is evaluated in the block
// that is current when the if is reached, and the builder is left where
// control continues afterwards.
func (g *Generator) genIf(x *syntax.IfExpr) error {
	if g.fn == nil {
		return errorf(x.Pos(), Unsupported, "if outside of a function")
	}

	cond, err := g.genCond(x.Cond)
	if err != nil {
		return err
	}

	fn := g.fn.fn
	thenBB := g.ctx.AddBasicBlock(fn, "then")
	elseBB := g.ctx.AddBasicBlock(fn, "else")
	var contBB llvm.BasicBlock
	if x.Else == nil {
		contBB = g.ctx.AddBasicBlock(fn, "continue")
	}
	g.b.CreateCondBr(cond, thenBB, elseBB)

	g.b.SetInsertPointAtEnd(thenBB)
	if err := g.genBlock(x.Then); err != nil {
		return err
	}

	if x.Else == nil {
		g.branchTo(contBB)
		g.b.SetInsertPointAtEnd(elseBB)
		g.b.CreateBr(contBB)
		g.b.SetInsertPointAtEnd(contBB)
		return nil
	}

	thenTail := g.b.GetInsertBlock()
	thenOpen := !g.terminated()
	g.b.SetInsertPointAtEnd(elseBB)
	if err := g.genBlock(x.Else); err != nil {
		return err
	}
	if !thenOpen {
		return nil
	}

	// The then branch falls through, so both branches need a common
	// successor.
	contBB = g.ctx.AddBasicBlock(fn, "continue")
	g.branchTo(contBB)
	g.b.SetInsertPointAtEnd(thenTail)
	g.b.CreateBr(contBB)
	g.b.SetInsertPointAtEnd(contBB)
	return nil
}

// genCond lowers an if condition to an i1. Wider integers are compared
// against zero.
func (g *Generator) genCond(x syntax.Expr) (llvm.Value, error) {
	v, err := g.nonVoid(x)
	if err != nil {
		return llvm.Value{}, err
	}
	v = g.rvalue(v)
	it, ok := v.Type.(*types.Integer)
	if !ok {
		return llvm.Value{}, errorf(x.Pos(), Mismatch, "expected condition, got `%s`", v.Type)
	}
	if it.Width() == 1 {
		return v.V, nil
	}
	zero := llvm.ConstInt(g.llvmType(it), 0, false)
	return g.b.CreateICmp(llvm.IntNE, v.V, zero, "cond"), nil
}

// branchTo ends the current block with a jump to bb unless it is already
// terminated.
func (g *Generator) branchTo(bb llvm.BasicBlock) {
	if !g.terminated() {
		g.b.CreateBr(bb)
	}
}
