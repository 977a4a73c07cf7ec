package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// section prints a labelled, indented child.
func (p *printer) section(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *File:
		p.printf("File %s\n", n.pos)
		p.indent++
		for _, it := range n.Items {
			p.print(it)
		}
		p.indent--

	case *Const:
		p.printf("Const %s %s\n", n.pos, n.Name)
		p.indent++
		if n.Type != nil {
			p.printf("Type: %s\n", TypeString(n.Type))
		}
		p.section("Value", n.Value)
		p.indent--

	case *Func:
		p.printf("Func %s %s\n", n.pos, n.Sig.Name)
		p.indent++
		if len(n.Sig.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, prm := range n.Sig.Params {
				p.printf("%s %s\n", prm.Name, TypeString(prm.Type))
			}
			p.indent--
		}
		if n.Sig.Result != nil {
			p.printf("Result: %s\n", TypeString(n.Sig.Result))
		}
		p.section("Body", n.Body)
		p.indent--

	case *Block:
		p.printf("Block %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *AssignStmt:
		p.printf("AssignStmt %s\n", n.pos)
		p.indent++
		p.section("Dst", n.Dst)
		p.section("Src", n.Src)
		p.indent--

	case *LocalStmt:
		mut := ""
		if n.Mutable {
			mut = " mut"
		}
		p.printf("LocalStmt %s %s%s\n", n.pos, n.Name, mut)
		p.indent++
		if n.Type != nil {
			p.printf("Type: %s\n", TypeString(n.Type))
		}
		if n.Init != nil {
			p.section("Init", n.Init)
		}
		p.indent--

	case *BasicLit:
		p.printf("BasicLit %s %s %s\n", n.pos, n.Kind, n.Value)

	case *Path:
		p.printf("Path %s %s\n", n.pos, n)

	case *Unary:
		p.printf("Unary %s %s\n", n.pos, n.Op)
		p.indent++
		p.print(n.X)
		p.indent--

	case *Binary:
		p.printf("Binary %s\n", n.pos)
		p.indent++
		p.print(n.Tree)
		p.indent--

	case *Scalar:
		p.print(n.X)

	case *Compound:
		p.printf("Compound %s\n", n.Op)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s %s\n", n.pos, n.Fun)
		if len(n.Args) > 0 {
			p.indent++
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent -= 2
		}

	case *IfExpr:
		p.printf("IfExpr %s\n", n.pos)
		p.indent++
		p.section("Cond", n.Cond)
		p.section("Then", n.Then)
		if n.Else != nil {
			p.section("Else", n.Else)
		}
		p.indent--

	case *ParenExpr:
		p.printf("ParenExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *TupleExpr:
		p.printf("TupleExpr %s (%d)\n", n.pos, len(n.Elems))
		p.indent++
		for _, e := range n.Elems {
			p.print(e)
		}
		p.indent--

	case *ArrayExpr:
		p.printf("ArrayExpr %s (%d)\n", n.pos, len(n.Elems))
		p.indent++
		for _, e := range n.Elems {
			p.print(e)
		}
		p.indent--

	default:
		p.printf("%T\n", n)
	}
}

// TypeString returns the raw type annotation as written, tokens joined by
// spaces, or "<none>" for a nil annotation.
func TypeString(t *RawType) string {
	if t == nil {
		return "<none>"
	}
	return strings.Join(t.Tokens, " ")
}

// ExprString renders an expression back to compact source form with binary
// trees fully parenthesized. It is used for diagnostics and tests.
func ExprString(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch n := x.(type) {
	case *BasicLit:
		b.WriteString(n.Value)
	case *Path:
		b.WriteString(n.String())
	case *Unary:
		b.WriteString(n.Op.String())
		writeExpr(b, n.X)
	case *Binary:
		writeBinary(b, n.Tree)
	case *CallExpr:
		b.WriteString(n.Fun.String())
		writeList(b, "(", ")", n.Args)
	case *IfExpr:
		b.WriteString("if ")
		writeExpr(b, n.Cond)
		fmt.Fprintf(b, " {%d}", len(n.Then.Stmts))
		if n.Else != nil {
			fmt.Fprintf(b, " else {%d}", len(n.Else.Stmts))
		}
	case *ParenExpr:
		b.WriteByte('(')
		writeExpr(b, n.X)
		b.WriteByte(')')
	case *TupleExpr:
		writeList(b, "(", ")", n.Elems)
	case *ArrayExpr:
		writeList(b, "[", "]", n.Elems)
	default:
		fmt.Fprintf(b, "%T", x)
	}
}

func writeBinary(b *strings.Builder, n BinaryNode) {
	switch n := n.(type) {
	case *Scalar:
		writeExpr(b, n.X)
	case *Compound:
		b.WriteByte('(')
		writeBinary(b, n.X)
		fmt.Fprintf(b, " %s ", n.Op)
		writeBinary(b, n.Y)
		b.WriteByte(')')
	}
}

func writeList(b *strings.Builder, open, close string, xs []Expr) {
	b.WriteString(open)
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, x)
	}
	b.WriteString(close)
}
