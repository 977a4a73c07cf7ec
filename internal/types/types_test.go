package types

import (
	"testing"

	"github.com/pkg/errors"
)

func TestString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{I32, "i32"},
		{NewInteger(8, false), "u8"},
		{F64, "f64"},
		{VoidTyp, "()"},
		{NewArray(I8, 4), "[4]i8"},
		{NewRef(I32, false), "&i32"},
		{NewRef(NewArray(I32, 2), true), "&mut [2]i32"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIdentical(t *testing.T) {
	tests := []struct {
		name string
		x, y Type
		want bool
	}{
		{"same pointer", I32, I32, true},
		{"equal ints", NewInteger(32, true), I32, true},
		{"signedness", NewInteger(32, false), I32, false},
		{"width", NewInteger(64, true), I32, false},
		{"int vs float", I32, NewFloat(32), false},
		{"void", &Void{}, VoidTyp, true},
		{"arrays", NewArray(I8, 3), NewArray(I8, 3), true},
		{"array length", NewArray(I8, 3), NewArray(I8, 4), false},
		{"refs", NewRef(I32, false), NewRef(I32, false), true},
		{"mut vs shared", NewRef(I32, true), NewRef(I32, false), false},
		{"ref vs base", NewRef(I32, false), I32, false},
		{"nil", nil, I32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Identical(tt.x, tt.y); got != tt.want {
				t.Errorf("Identical(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDeref(t *testing.T) {
	if got := Deref(NewRef(I32, true)); got != I32 {
		t.Errorf("Deref(&mut i32) = %v, want i32", got)
	}
	if got := Deref(F64); got != F64 {
		t.Errorf("Deref(f64) = %v, want f64", got)
	}
	if !IsMutRef(NewRef(I8, true)) || IsMutRef(NewRef(I8, false)) {
		t.Error("IsMutRef misclassified references")
	}
	if !IsVoid(nil) {
		t.Error("IsVoid(nil) = false")
	}
}

func TestNewRefPanicsOnNesting(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRef(&i32) did not panic")
		}
	}()
	NewRef(NewRef(I32, false), false)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"i32", "i32"},
		{"u8", "u8"},
		{"i1", "i1"},
		{"i128", "i128"},
		{"f32", "f32"},
		{"f64", "f64"},
		{"f128", "f128"},
		{"void", "()"},
		{"& i32", "&i32"},
		{"& mut i32", "&mut i32"},
		{"[ 4 ] i8", "[4]i8"},
		{"& [ 2 ] i32", "&[2]i32"},
		{"[ 2 ] [ 3 ] u16", "[2][3]u16"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := ResolveString(tt.src)
			if err != nil {
				t.Fatalf("ResolveString(%q) error: %v", tt.src, err)
			}
			if got.String() != tt.want {
				t.Errorf("ResolveString(%q) = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestResolveNil(t *testing.T) {
	got, err := Resolve(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !IsVoid(got) {
		t.Errorf("Resolve(nil) = %v, want ()", got)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []string{
		"int",
		"rune",
		"i",
		"i0",
		"i8388608",
		"ix",
		"f16",
		"& & i32",
		"& mut & mut i32",
		"& void",
		"[ ] rune",
		"[ x ] i8",
		"[ 2 ] & i8",
		"i32 i32",
		"",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := ResolveString(src)
			if err == nil {
				t.Fatalf("ResolveString(%q) succeeded", src)
			}
			if errors.Cause(err) != ErrUnknownType {
				t.Errorf("cause = %v, want ErrUnknownType", errors.Cause(err))
			}
		})
	}
}
