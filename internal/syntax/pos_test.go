package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{"with filename", NewPos("test.sd", 10, 5), "test.sd:10:5"},
		{"without filename", NewPos("", 10, 5), "10:5"},
		{"line 1 col 1", NewPos("main.sd", 1, 1), "main.sd:1:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{"valid position", NewPos("test.sd", 1, 1), true},
		{"zero line", NewPos("test.sd", 0, 1), false},
		{"zero value", Pos{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("Pos.IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestSpanLen(t *testing.T) {
	toks, err := Tokenize("a.sd", []byte("val  name = 42"))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 4, 1, 2}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if got := tok.Span.Len(); got != want[i] {
			t.Errorf("token %d (%q) span length = %d, want %d", i, tok.Value, got, want[i])
		}
	}
	if off := toks[1].Pos().Offset(); off != 5 {
		t.Errorf("offset of %q = %d, want 5", toks[1].Value, off)
	}
}
