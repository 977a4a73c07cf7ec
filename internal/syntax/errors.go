package syntax

import "fmt"

// ErrorKind classifies lexical and syntactic errors.
type ErrorKind uint8

const (
	// Lexical errors
	InvalidToken ErrorKind = iota
	UnterminatedLiteral

	// Syntactic errors, ordered from least to most specific
	ExpectedTokenType
	ExpectedTokenValue
	ExpectedStructure
	IllegalUnary
)

var errorKindNames = [...]string{
	InvalidToken:        "invalid token",
	UnterminatedLiteral: "unterminated literal",
	ExpectedTokenType:   "expected token type",
	ExpectedTokenValue:  "expected token value",
	ExpectedStructure:   "expected structure",
	IllegalUnary:        "illegal unary operator",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// IsLexical reports whether k is produced by the scanner.
func (k ErrorKind) IsLexical() bool {
	return k <= UnterminatedLiteral
}

// Error is a lexical or syntax error.
type Error struct {
	Pos  Pos
	Kind ErrorKind
	Msg  string

	at int // token index the parser had reached; ranks competing failures
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// further reports whether e is a better diagnostic than other: it got further
// into the input, or equally far with a more specific kind.
func (e *Error) further(other *Error) bool {
	if other == nil {
		return true
	}
	if e.at != other.at {
		return e.at > other.at
	}
	return e.Kind > other.Kind
}
