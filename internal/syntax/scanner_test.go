package syntax

import (
	"strings"
	"testing"
)

// tok is a compact expected token: kind plus raw value.
type tok struct {
	kind  TokenKind
	value string
}

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Tokenize("test.sd", []byte(src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return toks
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []tok
	}{
		{"ident", "foo_1", []tok{{Identifier, "foo_1"}}},
		{"keywords", "const func ret val mut if else",
			[]tok{{Keyword, "const"}, {Keyword, "func"}, {Keyword, "ret"}, {Keyword, "val"},
				{Keyword, "mut"}, {Keyword, "if"}, {Keyword, "else"}}},
		{"word operators", "a and b or c",
			[]tok{{Identifier, "a"}, {Operator, "and"}, {Identifier, "b"}, {Operator, "or"}, {Identifier, "c"}}},
		{"type names are identifiers", "i32 u8 f64 void",
			[]tok{{Identifier, "i32"}, {Identifier, "u8"}, {Identifier, "f64"}, {Identifier, "void"}}},
		{"operators", "+ - * / < > <= >= = == ! != << >> & | ^ :=",
			[]tok{{Operator, "+"}, {Operator, "-"}, {Operator, "*"}, {Operator, "/"},
				{Operator, "<"}, {Operator, ">"}, {Operator, "<="}, {Operator, ">="},
				{Operator, "="}, {Operator, "=="}, {Operator, "!"}, {Operator, "!="},
				{Operator, "<<"}, {Operator, ">>"}, {Operator, "&"}, {Operator, "|"},
				{Operator, "^"}, {Operator, ":="}}},
		{"compound assignment", "+= <<= >>= ^=",
			[]tok{{Operator, "+="}, {Operator, "<<="}, {Operator, ">>="}, {Operator, "^="}}},
		{"separators", "()[]{},.;",
			[]tok{{Separator, "("}, {Separator, ")"}, {Separator, "["}, {Separator, "]"},
				{Separator, "{"}, {Separator, "}"}, {Separator, ","}, {Separator, "."}, {Separator, ";"}}},
		{"newlines", "a\n\nb",
			[]tok{{Identifier, "a"}, {Newline, "\n"}, {Newline, "\n"}, {Identifier, "b"}}},
		{"comment", "a // note\nb",
			[]tok{{Identifier, "a"}, {Comment, "// note"}, {Newline, "\n"}, {Identifier, "b"}}},
		{"no space operators", "a-1",
			[]tok{{Identifier, "a"}, {Operator, "-"}, {Literal, "1"}}},
		{"path", "std.io.putd",
			[]tok{{Identifier, "std"}, {Separator, "."}, {Identifier, "io"}, {Separator, "."}, {Identifier, "putd"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.src)
			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tt.want))
			}
			for i, w := range tt.want {
				if toks[i].Kind != w.kind || toks[i].Value != w.value {
					t.Errorf("token %d = %s, want %s(%q)", i, toks[i], w.kind, w.value)
				}
			}
		})
	}
}

func TestScanLiterals(t *testing.T) {
	tests := []struct {
		src  string
		kind LitKind
	}{
		{"123", IntLit},
		{"0", IntLit},
		{"007", IntLit},
		{"0x1f", IntLit},
		{"0XDeAd", IntLit},
		{"0o77", IntLit},
		{"0b1010", IntLit},
		{"3.14", FloatLit},
		{"3.", FloatLit},
		{"1e10", FloatLit},
		{"2.5e-3", FloatLit},
		{`"hello"`, StringLit},
		{`""`, StringLit},
		{`"a\nb\"c"`, StringLit},
		{`"\x41"`, StringLit},
		{"`a`", RuneLit},
		{"`\\n`", RuneLit},
		{"`\\``", RuneLit},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := scanAll(t, tt.src)
			if len(toks) != 1 {
				t.Fatalf("got %d tokens %v, want 1", len(toks), toks)
			}
			if toks[0].Kind != Literal || toks[0].Lit != tt.kind {
				t.Errorf("got %s, want %s", toks[0], tt.kind)
			}
			if toks[0].Value != tt.src {
				t.Errorf("raw value = %q, want %q", toks[0].Value, tt.src)
			}
		})
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind ErrorKind
		msg  string
	}{
		{"unexpected char", "a $ b", InvalidToken, "unexpected character"},
		{"lone colon", "a : b", InvalidToken, "unexpected character ':'"},
		{"unterminated string", `"abc`, UnterminatedLiteral, "string literal not terminated"},
		{"string across newline", "\"ab\ncd\"", UnterminatedLiteral, "string literal not terminated"},
		{"unterminated rune", "`a", UnterminatedLiteral, "rune literal not terminated"},
		{"empty rune", "``", InvalidToken, "empty rune literal"},
		{"long rune", "`ab`", InvalidToken, "more than one character"},
		{"bad escape", `"\q"`, InvalidToken, "unknown escape sequence"},
		{"bad hex", "0xg", InvalidToken, "invalid hex digit"},
		{"bad binary", "0b12", InvalidToken, "invalid binary digit"},
		{"bad exponent", "1e+", InvalidToken, "exponent has no digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize("test.sd", []byte(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", e.Kind, tt.kind)
			}
			if !e.Kind.IsLexical() {
				t.Errorf("kind %s is not lexical", e.Kind)
			}
			if !strings.Contains(e.Msg, tt.msg) {
				t.Errorf("msg = %q, want it to contain %q", e.Msg, tt.msg)
			}
		})
	}
}

func TestScanErrorHandler(t *testing.T) {
	var msgs []string
	s := NewScanner("test.sd", strings.NewReader("a $ b # c"), func(pos Pos, msg string) {
		msgs = append(msgs, pos.String()+": "+msg)
	})
	var n int
	for s.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("scanned %d tokens, want 3", n)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d errors %v, want 2", len(msgs), msgs)
	}
	if !strings.HasPrefix(msgs[0], "test.sd:1:3:") {
		t.Errorf("first error = %q, want position test.sd:1:3", msgs[0])
	}
}

// TestScanRoundTrip re-tokenizes the concatenation of every token value and
// the whitespace between tokens and expects the same stream.
func TestScanRoundTrip(t *testing.T) {
	srcs := []string{
		"func main() {\n\tval a i32 = 0x2A // answer\n\tputd(a * (2 + 3))\n}\n",
		"const NAME [4]i8 = \"bruh\"\nconst R i8 = `\\n`\n",
		"if a<=b{ret -1}else{ret *p}\n",
		"val x &mut i32 = y;  x = 1.5e3 >> 2\n",
	}

	for _, src := range srcs {
		toks := scanAll(t, src)

		var b strings.Builder
		prev := 0
		for _, tk := range toks {
			gap := src[prev:tk.Span.Start.Offset()]
			if strings.Trim(gap, " \t\r") != "" {
				t.Fatalf("non-whitespace %q between tokens", gap)
			}
			b.WriteString(gap)
			b.WriteString(tk.Value)
			prev = tk.Span.End.Offset()
		}
		b.WriteString(src[prev:])

		again := scanAll(t, b.String())
		if len(again) != len(toks) {
			t.Fatalf("round trip produced %d tokens, want %d", len(again), len(toks))
		}
		for i := range toks {
			if again[i].Kind != toks[i].Kind || again[i].Lit != toks[i].Lit || again[i].Value != toks[i].Value {
				t.Errorf("token %d: got %s, want %s", i, again[i], toks[i])
			}
		}
	}
}

func TestStripComments(t *testing.T) {
	toks := scanAll(t, "// header\nval a = 1 // trailing\n")
	got := StripComments(toks)
	for _, tk := range got {
		if tk.Kind == Comment {
			t.Errorf("comment %q survived", tk.Value)
		}
	}
	if len(got) != len(toks)-2 {
		t.Errorf("got %d tokens, want %d", len(got), len(toks)-2)
	}
}

func TestLiteralValues(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"bruh"`, "bruh"},
		{`""`, ""},
		{`"a\tb"`, "a\tb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"\x41\x62"`, "Ab"},
		{`"nul\0"`, "nul\x00"},
	}
	for _, tt := range tests {
		got, err := StringValue(tt.raw)
		if err != nil {
			t.Errorf("StringValue(%s): %v", tt.raw, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("StringValue(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}

	runes := []struct {
		raw  string
		want byte
	}{
		{"`a`", 'a'},
		{"`\\n`", '\n'},
		{"`\\``", '`'},
		{"`\\x7f`", 0x7f},
	}
	for _, tt := range runes {
		got, err := RuneValue(tt.raw)
		if err != nil {
			t.Errorf("RuneValue(%s): %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RuneValue(%s) = %d, want %d", tt.raw, got, tt.want)
		}
	}

	if _, err := StringValue("bruh"); err == nil {
		t.Error("StringValue without quotes: expected error")
	}
}
