package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// The AST has three node classes: items at the top level, statements inside
// function bodies, and expressions. Each class is a closed set of types
// restricted to this package by marker methods.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
	aNode()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Item is the interface for all top-level items.
type Item interface {
	Node
	aItem()
}

// BinaryNode is one node of a precedence-shaped binary tree:
// either a *Scalar leaf or a *Compound.
type BinaryNode interface {
	Node
	aBinaryNode()
}

// ----------------------------------------------------------------------------
// Base node types

type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type item struct{ node }

func (*item) aItem() {}

type binaryNode struct{ node }

func (*binaryNode) aBinaryNode() {}

// ----------------------------------------------------------------------------
// Files and items

// File is a complete compilation unit.
type File struct {
	node
	Items []Item
}

// RawType is a type annotation as written: its tokens' text in order,
// e.g. ["&", "mut", "i32"]. It is resolved during code generation.
type RawType struct {
	node
	Tokens []string
}

// Const is a named constant: const NAME [type] = Value
type Const struct {
	item
	Name  string
	Type  *RawType // nil if inferred
	Value Expr
}

// Func is a function declaration: func Name(Params) [Result] { Body }
type Func struct {
	item
	Sig  *Signature
	Body *Block
}

// Signature is a function's name, parameters and optional result type.
type Signature struct {
	node
	Name   string
	Params []*Param
	Result *RawType // nil if no return type was written
}

// Param is one named function parameter.
type Param struct {
	node
	Name string
	Type *RawType
}

// Block is a braced, ordered list of statements.
type Block struct {
	node
	Stmts []Stmt
}

// ----------------------------------------------------------------------------
// Statements

// ReturnStmt is: ret [Result]
type ReturnStmt struct {
	stmt
	Result Expr // nil for a bare ret
}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	stmt
	X Expr
}

// AssignStmt is: Dst = Src
type AssignStmt struct {
	stmt
	Dst Expr
	Src Expr
}

// LocalStmt is: val Name [mut] [Type] [= Init]
type LocalStmt struct {
	stmt
	Mutable bool
	Name    string
	Type    *RawType // nil if inferred
	Init    Expr     // nil if absent
}

// ----------------------------------------------------------------------------
// Expressions

// BasicLit is a literal as written.
type BasicLit struct {
	expr
	Value string // raw text, delimiters included
	Kind  LitKind
}

// Path is one or more dot-joined identifiers.
type Path struct {
	expr
	Segments []string
}

// First returns the first path segment.
func (p *Path) First() string { return p.Segments[0] }

// Last returns the last path segment.
func (p *Path) Last() string { return p.Segments[len(p.Segments)-1] }

func (p *Path) String() string {
	s := p.Segments[0]
	for _, seg := range p.Segments[1:] {
		s += "." + seg
	}
	return s
}

// Unary is a prefix operation: -X or *X.
type Unary struct {
	expr
	Op Op
	X  Expr
}

// Binary is a binary expression shaped by precedence.
type Binary struct {
	expr
	Tree BinaryNode
}

// Scalar is a binary-tree leaf holding a non-binary operand.
type Scalar struct {
	binaryNode
	X Expr
}

// Compound is a binary-tree interior node: X Op Y.
type Compound struct {
	binaryNode
	X  BinaryNode
	Op Op
	Y  BinaryNode
}

// CallExpr is a call of a path: Fun(Args)
type CallExpr struct {
	expr
	Fun  *Path
	Args []Expr
}

// IfExpr is: if Cond { Then } [else { Else }]
type IfExpr struct {
	expr
	Cond Expr
	Then *Block
	Else *Block // nil without an else branch
}

// ParenExpr is: ( X )
type ParenExpr struct {
	expr
	X Expr
}

// TupleExpr is a parenthesized list of zero or at least two elements.
type TupleExpr struct {
	expr
	Elems []Expr
}

// ArrayExpr is: [ Elems ]
type ArrayExpr struct {
	expr
	Elems []Expr
}
