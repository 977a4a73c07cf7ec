package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/you-not-fish/sundae/internal/types"
)

// llvmType maps a semantic type to its native representation. References
// are pointers; signedness and mutability have no native counterpart.
func (g *Generator) llvmType(t types.Type) llvm.Type {
	switch t := t.(type) {
	case *types.Integer:
		return g.ctx.IntType(int(t.Width()))
	case *types.Float:
		switch t.Width() {
		case 32:
			return g.ctx.FloatType()
		case 128:
			return g.ctx.FP128Type()
		}
		return g.ctx.DoubleType()
	case *types.Array:
		return llvm.ArrayType(g.llvmType(t.Elem()), int(t.Len()))
	case *types.Ref:
		return llvm.PointerType(g.llvmType(t.Base()), 0)
	}
	return g.ctx.VoidType()
}

func (g *Generator) i32(n uint64) llvm.Value {
	return llvm.ConstInt(g.ctx.Int32Type(), n, false)
}
