package types

// Identical reports whether x and y are structurally identical types.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}

	switch x := x.(type) {
	case *Integer:
		if y, ok := y.(*Integer); ok {
			return x.width == y.width && x.signed == y.signed
		}
	case *Float:
		if y, ok := y.(*Float); ok {
			return x.width == y.width
		}
	case *Void:
		_, ok := y.(*Void)
		return ok
	case *Array:
		if y, ok := y.(*Array); ok {
			return x.len == y.len && Identical(x.elem, y.elem)
		}
	case *Ref:
		if y, ok := y.(*Ref); ok {
			return x.mutable == y.mutable && Identical(x.base, y.base)
		}
	}
	return false
}

// IsRef reports whether t is a reference type.
func IsRef(t Type) bool {
	_, ok := t.(*Ref)
	return ok
}

// IsMutRef reports whether t is a mutable reference type.
func IsMutRef(t Type) bool {
	r, ok := t.(*Ref)
	return ok && r.mutable
}

// Deref returns the base of a reference type, or t itself.
func Deref(t Type) Type {
	if r, ok := t.(*Ref); ok {
		return r.base
	}
	return t
}

// IsInteger reports whether t is an integer type.
func IsInteger(t Type) bool {
	_, ok := t.(*Integer)
	return ok
}

// IsFloat reports whether t is a float type.
func IsFloat(t Type) bool {
	_, ok := t.(*Float)
	return ok
}

// IsVoid reports whether t is void. A nil type counts as void.
func IsVoid(t Type) bool {
	if t == nil {
		return true
	}
	_, ok := t.(*Void)
	return ok
}
