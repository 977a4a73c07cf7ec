package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/sundae/internal/codegen"
	"github.com/you-not-fish/sundae/internal/rtabi"
	"github.com/you-not-fish/sundae/internal/syntax"
)

// TestE2E runs end-to-end tests for all .sd files in testdata/.
// Each test:
//  1. Runs the full pipeline: parse → codegen → object file
//  2. Links the object with cc against the runtime
//  3. Runs the binary and captures stdout
//  4. Compares output against the .golden file
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*" + rtabi.ExtSource)
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .sd test files found in testdata/")
	}

	if _, err := exec.LookPath("cc"); err != nil {
		t.Skip("cc not found, skipping E2E tests")
	}
	if _, err := codegen.NativeTarget(); err != nil {
		t.Skipf("no native LLVM target: %v", err)
	}

	runtimeC := findRuntime(t)

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), rtabi.ExtSource)
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile, runtimeC)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, srcFile, runtimeC string) {
	t.Helper()

	goldenFile := strings.TrimSuffix(srcFile, rtabi.ExtSource) + ".golden"
	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	tmpDir := t.TempDir()
	objFile := filepath.Join(tmpDir, "output"+rtabi.ExtObject)
	binFile := filepath.Join(tmpDir, "output")

	compileTo(t, srcFile, objFile)

	cmd := exec.Command("cc", objFile, runtimeC, "-o", binFile)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("cc failed:\n%s\n%v", out, err)
	}

	out, err := exec.Command(binFile).Output()
	if err != nil {
		t.Fatalf("binary execution failed: %v", err)
	}

	if got, want := string(out), string(expected); got != want {
		t.Errorf("output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// compileTo runs the compilation pipeline in-process and writes an object
// file to objFile.
func compileTo(t *testing.T, srcFile, objFile string) {
	t.Helper()

	src, err := os.ReadFile(srcFile)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	file, err := syntax.ParseFile(srcFile, src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	module := strings.TrimSuffix(filepath.Base(srcFile), rtabi.ExtSource)
	g, err := codegen.New(module)
	if err != nil {
		t.Fatalf("codegen.New: %v", err)
	}
	defer g.Dispose()

	if err := g.Generate(file); err != nil {
		t.Fatalf("codegen: %v", err)
	}
	if err := g.EmitObjectFile(objFile); err != nil {
		var ir strings.Builder
		_ = g.EmitIR(&ir)
		t.Fatalf("emit: %v\nIR:\n%s", err, ir.String())
	}
}

// findRuntime locates runtime/sundae_rt.c by walking up from the test
// directory.
func findRuntime(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	for {
		candidate := filepath.Join(dir, rtabi.RuntimeSource)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find " + rtabi.RuntimeSource)
		}
		dir = parent
	}
}
