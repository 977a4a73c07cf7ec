package codegen

import (
	"fmt"

	"github.com/you-not-fish/sundae/internal/syntax"
)

// ErrorKind classifies a code generation failure.
type ErrorKind uint8

const (
	UnknownType ErrorKind = iota // unresolvable type annotation
	NotFound                     // unknown identifier or function
	Arity                        // wrong number of call arguments
	Mismatch                     // value does not fit the expected type
	VoidValue                    // void used where a value is required
	Unsupported                  // construct the backend cannot lower
	Internal                     // generator bug; not a user error
)

var errorKindNames = [...]string{
	UnknownType: "unknown type",
	NotFound:    "not found",
	Arity:       "arity mismatch",
	Mismatch:    "type mismatch",
	VoidValue:   "void value",
	Unsupported: "unsupported",
	Internal:    "internal error",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is a semantic error found while lowering.
type Error struct {
	Pos  syntax.Pos
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

func errorf(pos syntax.Pos, kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
