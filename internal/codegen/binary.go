package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/you-not-fish/sundae/internal/syntax"
	"github.com/you-not-fish/sundae/internal/types"
)

type comparison struct {
	pred llvm.IntPredicate
	name string
}

var comparisons = map[syntax.Op]comparison{
	syntax.Lss: {llvm.IntSLT, "lt"},
	syntax.Gtr: {llvm.IntSGT, "gt"},
	syntax.Leq: {llvm.IntSLE, "le"},
	syntax.Geq: {llvm.IntSGE, "ge"},
	syntax.Eql: {llvm.IntEQ, "eqeq"},
	syntax.Neq: {llvm.IntNE, "neq"},
}

// genBinary lowers a binary tree. Both operands must be integers of the
// same width; the result is always reported as i32.
func (g *Generator) genBinary(n syntax.BinaryNode) (Value, error) {
	switch n := n.(type) {
	case *syntax.Scalar:
		return g.nonVoid(n.X)

	case *syntax.Compound:
		x, err := g.genBinary(n.X)
		if err != nil {
			return Value{}, err
		}
		y, err := g.genBinary(n.Y)
		if err != nil {
			return Value{}, err
		}
		x, y = g.rvalue(x), g.rvalue(y)

		xt, ok := x.Type.(*types.Integer)
		if !ok {
			return Value{}, errorf(n.Pos(), Mismatch, "operator %s wants integers, got `%s`", n.Op, x.Type)
		}
		yt, ok := y.Type.(*types.Integer)
		if !ok {
			return Value{}, errorf(n.Y.Pos(), Mismatch, "operator %s wants integers, got `%s`", n.Op, y.Type)
		}
		if xt.Width() != yt.Width() {
			return Value{}, errorf(n.Pos(), Mismatch, "mismatched operands `%s` %s `%s`", x.Type, n.Op, y.Type)
		}

		v, cmp := g.binaryOp(n.Op, x.V, y.V)
		if v.IsNil() {
			return Value{}, errorf(n.Pos(), Internal, "unexpected binary operator %s", n.Op)
		}
		return Value{Type: types.I32, V: g.toI32(v, cmp || !xt.Signed())}, nil
	}
	return Value{}, errorf(n.Pos(), Internal, "unexpected binary node %T", n)
}

// binaryOp emits the instruction for op. cmp reports whether the result is
// a 1-bit comparison.
func (g *Generator) binaryOp(op syntax.Op, x, y llvm.Value) (v llvm.Value, cmp bool) {
	if c, ok := comparisons[op]; ok {
		return g.b.CreateICmp(c.pred, x, y, c.name), true
	}

	switch op {
	case syntax.Add:
		return g.b.CreateAdd(x, y, "sum"), false
	case syntax.Sub:
		return g.b.CreateSub(x, y, "sub"), false
	case syntax.Mul:
		return g.b.CreateMul(x, y, "mul"), false
	case syntax.Div:
		return g.b.CreateSDiv(x, y, "div"), false
	case syntax.And, syntax.AndAnd:
		return g.b.CreateAnd(x, y, "and"), false
	case syntax.Or, syntax.OrOr:
		return g.b.CreateOr(x, y, "or"), false
	case syntax.Xor:
		return g.b.CreateXor(x, y, "xor"), false
	case syntax.Shl:
		return g.b.CreateShl(x, y, "shl"), false
	case syntax.Shr:
		return g.b.CreateAShr(x, y, "shr"), false
	}
	return llvm.Value{}, false
}

// toI32 widens or narrows an integer result to 32 bits so that it agrees
// with the i32 it is reported as.
func (g *Generator) toI32(v llvm.Value, zext bool) llvm.Value {
	i32 := g.ctx.Int32Type()
	switch w := v.Type().IntTypeWidth(); {
	case w < 32 && zext:
		return g.b.CreateZExt(v, i32, "")
	case w < 32:
		return g.b.CreateSExt(v, i32, "")
	case w > 32:
		return g.b.CreateTrunc(v, i32, "")
	}
	return v
}
