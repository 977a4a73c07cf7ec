package syntax

import "fmt"

// Op identifies a unary or binary operator.
type Op uint8

const (
	_ Op = iota

	// Multiplicative
	Mul // *
	Div // /

	// Additive, logical, relational and bitwise
	Add    // +
	Sub    // -
	AndAnd // and
	OrOr   // or
	Lss    // <
	Gtr    // >
	Leq    // <=
	Geq    // >=
	Eql    // ==
	Neq    // !=
	Shl    // <<
	Shr    // >>
	And    // &
	Or     // |
	Xor    // ^

	// Unary
	Neg   // -x
	Deref // *x

	operatorCount
)

var operatorNames = [...]string{
	Mul:    "*",
	Div:    "/",
	Add:    "+",
	Sub:    "-",
	AndAnd: "and",
	OrOr:   "or",
	Lss:    "<",
	Gtr:    ">",
	Leq:    "<=",
	Geq:    ">=",
	Eql:    "==",
	Neq:    "!=",
	Shl:    "<<",
	Shr:    ">>",
	And:    "&",
	Or:     "|",
	Xor:    "^",
	Neg:    "-",
	Deref:  "*",
}

func (op Op) String() string {
	if op > 0 && op < operatorCount {
		return operatorNames[op]
	}
	return fmt.Sprintf("op(%d)", op)
}

// factorOps are the operators binding tighter than everything else.
var factorOps = map[string]Op{
	"*": Mul,
	"/": Div,
}

// termOps are the remaining binary operators, all at one tier.
var termOps = map[string]Op{
	"+":   Add,
	"-":   Sub,
	"and": AndAnd,
	"or":  OrOr,
	"<":   Lss,
	">":   Gtr,
	"<=":  Leq,
	">=":  Geq,
	"==":  Eql,
	"!=":  Neq,
	"<<":  Shl,
	">>":  Shr,
	"&":   And,
	"|":   Or,
	"^":   Xor,
}

var unaryOps = map[string]Op{
	"-": Neg,
	"*": Deref,
}
