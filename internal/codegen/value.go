package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/you-not-fish/sundae/internal/syntax"
	"github.com/you-not-fish/sundae/internal/types"
)

// check reports an internal error if v's native representation disagrees
// with its semantic type.
func (g *Generator) check(pos syntax.Pos, v Value) error {
	native := v.V.Type()
	if types.IsRef(v.Type) {
		if native.TypeKind() != llvm.PointerTypeKind {
			return errorf(pos, Internal, "reference `%s` is not a pointer", v.Type)
		}
		return nil
	}
	if native != g.llvmType(v.Type) {
		return errorf(pos, Internal, "value of type `%s` has the wrong native representation", v.Type)
	}
	return nil
}

// refCast coerces v to the target type. Identical types, and a mutable
// reference used as a shared one, pass through unchanged. A value cast to a
// reference is spilled to fresh stack storage; a reference cast to a value
// is loaded.
func (g *Generator) refCast(pos syntax.Pos, v Value, target types.Type) (Value, error) {
	if err := g.check(pos, v); err != nil {
		return Value{}, err
	}

	src := v.Type
	switch {
	case types.Identical(src, target):
		return v, nil

	case types.IsRef(src) && types.IsRef(target):
		if types.IsMutRef(src) && !types.IsMutRef(target) &&
			types.Identical(types.Deref(src), types.Deref(target)) {
			return Value{Type: target, V: v.V}, nil
		}

	case types.IsRef(target):
		base := types.Deref(target)
		if types.Identical(src, base) {
			slot := g.alloca(base, "cast")
			g.b.CreateStore(v.V, slot)
			return Value{Type: target, V: slot}, nil
		}

	case types.IsRef(src):
		if types.Identical(types.Deref(src), target) {
			return g.load(v), nil
		}
	}

	return Value{}, errorf(pos, Mismatch, "cast asks for `%s`, got `%s`", target, src)
}

// load reads through a reference.
func (g *Generator) load(ref Value) Value {
	base := types.Deref(ref.Type)
	return Value{Type: base, V: g.b.CreateLoad(g.llvmType(base), ref.V, "")}
}

// rvalue loads through v if it is a reference.
func (g *Generator) rvalue(v Value) Value {
	if types.IsRef(v.Type) {
		return g.load(v)
	}
	return v
}

// nonVoid lowers x and requires it to produce a value.
func (g *Generator) nonVoid(x syntax.Expr) (Value, error) {
	v, err := g.genExpr(x)
	if err != nil {
		return Value{}, err
	}
	if v == nil {
		return Value{}, errorf(x.Pos(), VoidValue, "using void as a value")
	}
	return *v, nil
}

// alloca allocates stack storage for t in the entry block, so the storage
// dominates every use no matter which block declared it. The builder is
// left at the end of the current block.
func (g *Generator) alloca(t types.Type, name string) llvm.Value {
	cur := g.b.GetInsertBlock()
	entry := g.fn.fn.EntryBasicBlock()
	if term := entry.LastInstruction(); cur != entry && !term.IsNil() {
		g.b.SetInsertPointBefore(term)
	}
	slot := g.b.CreateAlloca(g.llvmType(t), name)
	g.b.SetInsertPointAtEnd(cur)
	return slot
}

// reachable reports whether control can get from the entry block to bb.
func (g *Generator) reachable(bb llvm.BasicBlock) bool {
	entry := g.fn.fn.EntryBasicBlock()
	seen := map[llvm.BasicBlock]bool{entry: true}
	work := []llvm.BasicBlock{entry}
	for len(work) > 0 {
		b := work[len(work)-1]
		work = work[:len(work)-1]
		if b == bb {
			return true
		}
		term := b.LastInstruction()
		if term.IsNil() {
			continue
		}
		for i := 0; i < term.OperandsCount(); i++ {
			op := term.Operand(i)
			if !op.IsBasicBlock() {
				continue
			}
			if succ := op.AsBasicBlock(); !seen[succ] {
				seen[succ] = true
				work = append(work, succ)
			}
		}
	}
	return false
}

// terminated reports whether the current block already ends in a
// terminator.
func (g *Generator) terminated() bool {
	last := g.b.GetInsertBlock().LastInstruction()
	if last.IsNil() {
		return false
	}
	switch last.InstructionOpcode() {
	case llvm.Ret, llvm.Br, llvm.Switch, llvm.IndirectBr, llvm.Unreachable:
		return true
	}
	return false
}
