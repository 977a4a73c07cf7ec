// Package codegen lowers a parsed sundae file into an LLVM module.
//
// Lowering is a single pass over the items in source order. A function can
// only call builtins and functions defined above it, because a function is
// registered in the runtime table after its body has been lowered.
package codegen

import (
	"github.com/pkg/errors"
	"tinygo.org/x/go-llvm"

	"github.com/you-not-fish/sundae/internal/rtabi"
	"github.com/you-not-fish/sundae/internal/syntax"
	"github.com/you-not-fish/sundae/internal/types"
)

// Value is a generated IR value paired with its semantic type.
//
// A reference-typed Value is a pointer to storage of the base type; any
// other Value holds the base type's bits directly.
type Value struct {
	Type types.Type
	V    llvm.Value

	slot bool // storage of a variable, not a reference it was bound to
}

// Param is a named function parameter.
type Param struct {
	Name string
	Type types.Type
}

// Function is a declared function. Stack maps local and parameter names to
// their storage and is only populated while the body is lowered.
type Function struct {
	Name   string
	Params []Param
	Result types.Type
	Stack  map[string]Value

	fn     llvm.Value
	fnType llvm.Type
}

// Constant is a named global constant.
type Constant struct {
	Type   types.Type
	Global llvm.Value
}

// Runtime is the global symbol table of one compilation. Entries are only
// ever added.
type Runtime struct {
	Functions map[string]*Function
	Constants map[string]*Constant
}

// Generator lowers one compilation unit into an LLVM module.
type Generator struct {
	ctx llvm.Context
	mod llvm.Module
	b   llvm.Builder
	rt  *Runtime

	fn *Function // function being lowered; nil between items
}

// New creates a Generator for a module with the given name and declares the
// runtime functions in it.
func New(name string) (*Generator, error) {
	ctx := llvm.NewContext()
	g := &Generator{
		ctx: ctx,
		mod: ctx.NewModule(name),
		b:   ctx.NewBuilder(),
		rt: &Runtime{
			Functions: make(map[string]*Function),
			Constants: make(map[string]*Constant),
		},
	}
	if err := g.declareRuntime(); err != nil {
		g.Dispose()
		return nil, err
	}
	return g, nil
}

// Dispose releases the LLVM resources owned by g.
func (g *Generator) Dispose() {
	g.b.Dispose()
	g.mod.Dispose()
	g.ctx.Dispose()
}

// Module returns the module being built.
func (g *Generator) Module() llvm.Module { return g.mod }

// Runtime returns the global symbol table.
func (g *Generator) Runtime() *Runtime { return g.rt }

// Generate lowers every item of f in order. The first failure aborts
// lowering.
func (g *Generator) Generate(f *syntax.File) error {
	for _, it := range f.Items {
		if err := g.genItem(it); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) declareRuntime() error {
	for _, sig := range rtabi.RuntimeFunctions() {
		fn := &Function{Name: sig.Name, Result: types.VoidTyp}
		for _, p := range sig.Params {
			t, err := types.ResolveString(p.Type)
			if err != nil {
				return errors.Wrapf(err, "runtime function %s", sig.Name)
			}
			fn.Params = append(fn.Params, Param{Name: p.Name, Type: t})
		}
		if sig.Result != "" {
			t, err := types.ResolveString(sig.Result)
			if err != nil {
				return errors.Wrapf(err, "runtime function %s", sig.Name)
			}
			fn.Result = t
		}
		g.declare(fn)
		g.rt.Functions[fn.Name] = fn
	}
	return nil
}

// declare adds fn's native function to the module.
func (g *Generator) declare(fn *Function) {
	params := make([]llvm.Type, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = g.llvmType(p.Type)
	}
	fn.fnType = llvm.FunctionType(g.llvmType(fn.Result), params, false)
	fn.fn = llvm.AddFunction(g.mod, fn.Name, fn.fnType)
}
