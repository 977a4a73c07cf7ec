// Package types implements the semantic type algebra of the sundae language
// and the resolution of written type annotations into it.
package types

import "fmt"

// Type is the interface implemented by all types.
type Type interface {
	// String returns the type as it is written in source.
	String() string

	aType()
}

type typ struct{}

func (typ) aType() {}

// ----------------------------------------------------------------------------
// Scalars

// Integer is a fixed-width integer.
type Integer struct {
	typ
	width  uint
	signed bool
}

// MaxIntWidth is the widest integer the backend supports.
const MaxIntWidth = 1<<23 - 1

// NewInteger returns the integer type of the given bit width.
func NewInteger(width uint, signed bool) *Integer {
	return &Integer{width: width, signed: signed}
}

func (t *Integer) Width() uint  { return t.width }
func (t *Integer) Signed() bool { return t.signed }

func (t *Integer) String() string {
	if t.signed {
		return fmt.Sprintf("i%d", t.width)
	}
	return fmt.Sprintf("u%d", t.width)
}

// Float is an IEEE floating-point type.
type Float struct {
	typ
	width uint
}

// FloatWidths lists the supported float widths.
var FloatWidths = []uint{32, 64, 128}

// NewFloat returns the float type of the given bit width.
func NewFloat(width uint) *Float {
	return &Float{width: width}
}

func (t *Float) Width() uint { return t.width }

func (t *Float) String() string {
	return fmt.Sprintf("f%d", t.width)
}

// Void is the type of functions that return nothing.
type Void struct {
	typ
}

func (*Void) String() string { return "()" }

// ----------------------------------------------------------------------------
// Composites

// Array is a fixed-size array.
type Array struct {
	typ
	elem Type
	len  int64
}

// NewArray returns the type [n]elem.
func NewArray(elem Type, n int64) *Array {
	return &Array{elem: elem, len: n}
}

func (t *Array) Elem() Type { return t.elem }
func (t *Array) Len() int64 { return t.len }

func (t *Array) String() string {
	return fmt.Sprintf("[%d]%s", t.len, t.elem)
}

// Ref is a reference: the address of storage holding a value of the base
// type. A reference is always exactly one level over a non-reference base.
type Ref struct {
	typ
	base    Type
	mutable bool
}

// NewRef returns &base or &mut base. It panics if base is itself a reference.
func NewRef(base Type, mutable bool) *Ref {
	if _, ok := base.(*Ref); ok {
		panic(fmt.Sprintf("types: reference to reference %s", base))
	}
	return &Ref{base: base, mutable: mutable}
}

func (t *Ref) Base() Type    { return t.base }
func (t *Ref) Mutable() bool { return t.mutable }

func (t *Ref) String() string {
	if t.mutable {
		return "&mut " + t.base.String()
	}
	return "&" + t.base.String()
}

// ----------------------------------------------------------------------------
// Predeclared types

var (
	I8      = NewInteger(8, true)
	I32     = NewInteger(32, true)
	F64     = NewFloat(64)
	VoidTyp = &Void{}
)
