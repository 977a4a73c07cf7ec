// Package rtabi defines the ABI shared between the compiler and the runtime
// support library (runtime/sundae_rt.c).
package rtabi

// Runtime function names (must match runtime/sundae_rt.c)
const (
	// FnPutd prints a 32-bit signed integer followed by a newline.
	FnPutd = "putd"
)

// EntryPoint is the name of the program's entry function. Its native return
// type is always a 32-bit integer and it returns 0 when control falls off
// the end of its body.
const EntryPoint = "main"

// Param is one named parameter of a runtime function.
type Param struct {
	Name string
	Type string // source-level annotation, e.g. "i32"
}

// FuncSignature describes a runtime function for the code generator.
type FuncSignature struct {
	Name   string
	Params []Param
	Result string // source-level annotation; "" for void
}

// RuntimeFunctions returns the signatures of all runtime functions, in the
// order they are declared in the generated module.
func RuntimeFunctions() []FuncSignature {
	return []FuncSignature{
		{Name: FnPutd, Params: []Param{{Name: "n", Type: "i32"}}},
	}
}

// Lookup returns the runtime function with the given name.
func Lookup(name string) (FuncSignature, bool) {
	for _, fn := range RuntimeFunctions() {
		if fn.Name == name {
			return fn, true
		}
	}
	return FuncSignature{}, false
}
