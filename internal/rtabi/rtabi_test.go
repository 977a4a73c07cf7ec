package rtabi

import (
	"path/filepath"
	"testing"
)

func TestLookup(t *testing.T) {
	fn, ok := Lookup(FnPutd)
	if !ok {
		t.Fatalf("Lookup(%q) failed", FnPutd)
	}
	if len(fn.Params) != 1 || fn.Params[0].Type != "i32" {
		t.Errorf("putd params = %+v, want one i32", fn.Params)
	}
	if fn.Result != "" {
		t.Errorf("putd result = %q, want void", fn.Result)
	}

	if _, ok := Lookup("puts"); ok {
		t.Error("Lookup(puts) succeeded")
	}
}

func TestOutputBase(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		src, output, want string
	}{
		{"prog.sd", "", "prog"},
		{filepath.Join("dir", "prog.sd"), "", "prog"},
		{"prog.sd", "out" + sep, filepath.Join("out", "prog")},
		{"prog.sd", "bin", "bin"},
		{"prog.sd", filepath.Join("build", "app.exe"), filepath.Join("build", "app")},
	}

	for _, tt := range tests {
		t.Run(tt.src+"->"+tt.output, func(t *testing.T) {
			if got := OutputBase(tt.src, tt.output); got != tt.want {
				t.Errorf("OutputBase(%q, %q) = %q, want %q", tt.src, tt.output, got, tt.want)
			}
		})
	}
}
