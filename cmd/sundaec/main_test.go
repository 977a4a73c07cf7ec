package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/you-not-fish/sundae/internal/codegen"
	"github.com/you-not-fish/sundae/internal/syntax"
)

const helloSource = `// prints 42
func main() {
	putd(40 + 2)
}
`

func TestRunEmitTokens(t *testing.T) {
	filename := writeTempSundaeFile(t, "val s = \"a\\tb\"\n")
	code, out, errOut := captureOutput(t, func() int {
		return runEmitTokens(filename)
	})

	if code != 0 {
		t.Fatalf("runEmitTokens exit=%d\nstderr:\n%s\nstdout:\n%s", code, errOut, out)
	}
	for _, want := range []string{
		"POSITION",
		"KEYWORD",
		`"val"`,
		"IDENT",
		"StringLit",
		`"\"a\\tb\""`,
		"NEWLINE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("token output missing %q:\n%s", want, out)
		}
	}
}

func TestRunEmitTokensReportsErrors(t *testing.T) {
	filename := writeTempSundaeFile(t, "val s = \"open\n")
	code, out, _ := captureOutput(t, func() int {
		return runEmitTokens(filename)
	})

	if code != 1 {
		t.Fatalf("runEmitTokens exit=%d, want 1\n%s", code, out)
	}
	if !strings.Contains(out, "Errors:") {
		t.Fatalf("token output missing error section:\n%s", out)
	}
}

func TestRunEmitAST(t *testing.T) {
	filename := writeTempSundaeFile(t, helloSource)

	t.Run("text", func(t *testing.T) {
		code, out, errOut := captureOutput(t, func() int {
			return runEmitAST(filename, "text")
		})
		if code != 0 {
			t.Fatalf("runEmitAST exit=%d\nstderr:\n%s", code, errOut)
		}
		for _, want := range []string{"Func", "main", "CallExpr", "putd", "Compound +"} {
			if !strings.Contains(out, want) {
				t.Errorf("AST output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		code, out, errOut := captureOutput(t, func() int {
			return runEmitAST(filename, "json")
		})
		if code != 0 {
			t.Fatalf("runEmitAST exit=%d\nstderr:\n%s", code, errOut)
		}
		for _, want := range []string{`"type": "File"`, `"name": "main"`, `"type": "CallExpr"`} {
			if !strings.Contains(out, want) {
				t.Errorf("JSON output missing %q:\n%s", want, out)
			}
		}
	})
}

func TestRunEmitASTParseError(t *testing.T) {
	filename := writeTempSundaeFile(t, "const = 1\n")
	code, out, errOut := captureOutput(t, func() int {
		return runEmitAST(filename, "text")
	})

	if code != 1 {
		t.Fatalf("runEmitAST exit=%d, want 1\nstdout:\n%s", code, out)
	}
	if !strings.HasPrefix(errOut, filename+":1:") {
		t.Errorf("diagnostic should start with the position:\n%s", errOut)
	}
	if !strings.Contains(errOut, "error:") {
		t.Errorf("diagnostic missing error label:\n%s", errOut)
	}
}

func TestPrintError(t *testing.T) {
	pos := syntax.NewPos("a.sd", 2, 5)
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "syntax",
			err:  &syntax.Error{Pos: pos, Kind: syntax.ExpectedTokenType, Msg: "expected identifier"},
			want: "a.sd:2:5: error: expected identifier [expected token type]\n",
		},
		{
			name: "codegen",
			err: errors.Wrapf(&codegen.Error{Pos: pos, Kind: codegen.NotFound, Msg: "identifier `x` not found"},
				"in function %q", "main"),
			want: "a.sd:2:5: error: in function \"main\": identifier `x` not found [not found]\n",
		},
		{
			name: "other",
			err:  errors.New("runtime library not found"),
			want: "error: runtime library not found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, false, tt.err)
			if got := buf.String(); got != tt.want {
				t.Errorf("printError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintErrorColor(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, true, errors.New("boom"))
	if !strings.Contains(buf.String(), string(red)) {
		t.Errorf("colored output missing escape: %q", buf.String())
	}
}

func TestFormatLiteral(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"main", `"main"`},
		{"\n", `"\n"`},
		{`"hi"`, `"\"hi\""`},
		{"a\tb", `"a\tb"`},
	}
	for _, tt := range tests {
		if got := formatLiteral(tt.in); got != tt.want {
			t.Errorf("formatLiteral(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SUNDAE_CC", "clang")
	t.Setenv("SUNDAE_RUNTIME", "/opt/sundae/rt.c")
	t.Setenv("SUNDAE_LDFLAGS", "-lm  -static")
	t.Setenv("SUNDAE_WATCH_DELAY_MS", "250")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("SUNDAE_VERBOSE", "true")

	cfg := loadConfig()
	if cfg.CC != "clang" {
		t.Errorf("CC = %q, want clang", cfg.CC)
	}
	if cfg.Runtime != "/opt/sundae/rt.c" {
		t.Errorf("Runtime = %q", cfg.Runtime)
	}
	if len(cfg.LDFlags) != 2 || cfg.LDFlags[0] != "-lm" || cfg.LDFlags[1] != "-static" {
		t.Errorf("LDFlags = %q", cfg.LDFlags)
	}
	if cfg.WatchDelay.Milliseconds() != 250 {
		t.Errorf("WatchDelay = %v, want 250ms", cfg.WatchDelay)
	}
	if cfg.Color {
		t.Error("Color should be off with NO_COLOR set")
	}
	if !cfg.Verbose {
		t.Error("Verbose should be on")
	}
}

func TestLinkWithoutRuntime(t *testing.T) {
	cfg := &config{CC: "cc"}
	err := link(cfg, "a.o", "a")
	if err == nil || !strings.Contains(err.Error(), "SUNDAE_RUNTIME") {
		t.Fatalf("link() error = %v, want missing runtime", err)
	}
}

func TestCompileObjectOnly(t *testing.T) {
	if _, err := codegen.NativeTarget(); err != nil {
		t.Skipf("no native target: %v", err)
	}

	filename := writeTempSundaeFile(t, helloSource)
	outDir := t.TempDir() + string(filepath.Separator)

	defer func(c bool, o string, ll bool) { *objOnly, *output, *emitLL = c, o, ll }(*objOnly, *output, *emitLL)
	*objOnly, *output, *emitLL = true, outDir, true

	if err := compile(filename, &config{CC: "cc"}); err != nil {
		t.Fatalf("compile: %v", err)
	}

	for _, ext := range []string{".o", ".ll"} {
		if _, err := os.Stat(filepath.Join(outDir, "input"+ext)); err != nil {
			t.Errorf("missing output %s: %v", ext, err)
		}
	}
	ir, err := os.ReadFile(filepath.Join(outDir, "input.ll"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(ir), "call void @putd(i32 42)") {
		t.Errorf("IR missing folded putd call:\n%s", ir)
	}
}

func TestCompileReportsCodegenError(t *testing.T) {
	filename := writeTempSundaeFile(t, "func main() {\n\tputd(y)\n}\n")
	err := compile(filename, &config{CC: "cc"})

	var cerr *codegen.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("compile error = %v, want *codegen.Error", err)
	}
	if cerr.Kind != codegen.NotFound {
		t.Errorf("kind = %v, want %v", cerr.Kind, codegen.NotFound)
	}
}

func writeTempSundaeFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.sd")
	if err := os.WriteFile(filename, []byte(src), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}

func captureOutput(t *testing.T, fn func() int) (code int, stdout string, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stdout: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe stderr: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code = fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	outBytes, _ := io.ReadAll(rOut)
	errBytes, _ := io.ReadAll(rErr)
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}
