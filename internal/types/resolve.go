package types

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/you-not-fish/sundae/internal/syntax"
)

// ErrUnknownType is the cause of every resolution failure.
var ErrUnknownType = errors.New("unknown type")

// Resolve maps a written type annotation onto the type algebra.
// A nil annotation resolves to void.
func Resolve(raw *syntax.RawType) (Type, error) {
	if raw == nil {
		return VoidTyp, nil
	}
	t, err := resolveTokens(raw.Tokens)
	if err != nil {
		return nil, errors.Wrapf(err, "in `%s`", strings.Join(raw.Tokens, " "))
	}
	return t, nil
}

// ResolveString resolves a space-separated annotation such as "&mut i32".
func ResolveString(s string) (Type, error) {
	return Resolve(&syntax.RawType{Tokens: strings.Fields(s)})
}

func resolveTokens(toks []string) (Type, error) {
	if len(toks) == 0 {
		return nil, errors.Wrap(ErrUnknownType, "empty annotation")
	}

	switch toks[0] {
	case "&":
		rest := toks[1:]
		mutable := len(rest) > 0 && rest[0] == "mut"
		if mutable {
			rest = rest[1:]
		}
		base, err := resolveTokens(rest)
		if err != nil {
			return nil, err
		}
		if IsRef(base) {
			return nil, errors.Wrapf(ErrUnknownType, "reference to reference %s", base)
		}
		if IsVoid(base) {
			return nil, errors.Wrap(ErrUnknownType, "reference to void")
		}
		return NewRef(base, mutable), nil

	case "[":
		if len(toks) < 4 || toks[2] != "]" {
			if len(toks) > 1 && toks[1] == "]" {
				return nil, errors.Wrap(ErrUnknownType, "array without a length")
			}
			return nil, errors.Wrap(ErrUnknownType, "malformed array type")
		}
		n, err := strconv.ParseInt(toks[1], 10, 64)
		if err != nil || n < 0 {
			return nil, errors.Wrapf(ErrUnknownType, "invalid array length %q", toks[1])
		}
		elem, err := resolveTokens(toks[3:])
		if err != nil {
			return nil, err
		}
		if IsRef(elem) || IsVoid(elem) {
			return nil, errors.Wrapf(ErrUnknownType, "invalid array element %s", elem)
		}
		return NewArray(elem, n), nil
	}

	if len(toks) != 1 {
		return nil, errors.Wrapf(ErrUnknownType, "%q", strings.Join(toks, " "))
	}
	return resolveName(toks[0])
}

func resolveName(name string) (Type, error) {
	switch name {
	case "void":
		return VoidTyp, nil
	case "f32":
		return NewFloat(32), nil
	case "f64":
		return F64, nil
	case "f128":
		return NewFloat(128), nil
	}

	if len(name) < 2 || (name[0] != 'i' && name[0] != 'u') || !isDecimal(name[1:]) {
		return nil, errors.Wrapf(ErrUnknownType, "%q", name)
	}
	width, err := strconv.ParseUint(name[1:], 10, 32)
	if err != nil || width == 0 || width > MaxIntWidth {
		return nil, errors.Wrapf(ErrUnknownType, "invalid integer width in %q", name)
	}
	return NewInteger(uint(width), name[0] == 'i'), nil
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
