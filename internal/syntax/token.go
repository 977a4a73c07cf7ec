// Package syntax implements lexical and syntactic analysis for the sundae
// programming language.
package syntax

import "fmt"

// TokenKind classifies a lexical token.
type TokenKind uint8

const (
	Keyword TokenKind = iota
	Identifier
	Operator
	Literal
	Separator
	Comment
	Newline

	tokenKindCount
)

var tokenKindNames = [...]string{
	Keyword:    "KEYWORD",
	Identifier: "IDENT",
	Operator:   "OPERATOR",
	Literal:    "LITERAL",
	Separator:  "SEPARATOR",
	Comment:    "COMMENT",
	Newline:    "NEWLINE",
}

// String returns the display name of the token kind.
func (k TokenKind) String() string {
	if k < tokenKindCount {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLit LitKind = iota
	FloatLit
	StringLit
	RuneLit
)

var litKindNames = [...]string{
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	RuneLit:   "RuneLit",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if int(k) < len(litKindNames) {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// Token is one classified lexical unit. Value holds the raw source text,
// including the delimiters of string and rune literals.
type Token struct {
	Kind  TokenKind
	Lit   LitKind // only meaningful when Kind == Literal
	Value string
	Span  Span
}

// Pos returns the start position of the token.
func (t Token) Pos() Pos {
	return t.Span.Start
}

// Is reports whether t has the given kind and raw value.
func (t Token) Is(kind TokenKind, value string) bool {
	return t.Kind == kind && t.Value == value
}

func (t Token) String() string {
	if t.Kind == Literal {
		return fmt.Sprintf("%s(%s %q)", t.Kind, t.Lit, t.Value)
	}
	if t.Kind == Newline {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}

// keywords maps reserved words to true.
var keywords = map[string]bool{
	"const": true,
	"func":  true,
	"ret":   true,
	"val":   true,
	"mut":   true,
	"if":    true,
	"else":  true,
}

// wordOperators are identifiers that lex as operators.
var wordOperators = map[string]bool{
	"and": true,
	"or":  true,
}

// LookupIdent classifies an identifier-shaped word.
func LookupIdent(word string) TokenKind {
	if keywords[word] {
		return Keyword
	}
	if wordOperators[word] {
		return Operator
	}
	return Identifier
}

// IsKeyword reports whether s is a reserved keyword.
func IsKeyword(s string) bool {
	return keywords[s]
}
