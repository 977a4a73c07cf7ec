// Package main implements the sundae compiler driver.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/you-not-fish/sundae/internal/codegen"
	"github.com/you-not-fish/sundae/internal/rtabi"
	"github.com/you-not-fish/sundae/internal/syntax"
)

// Compiler flags
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	emitLL     = flag.Bool("emit-ll", false, "Also write LLVM IR (.ll)")
	objOnly    = flag.Bool("c", false, "Write the object file only, do not link")
	output     = flag.String("o", "", "Output executable (a trailing / names a directory)")
	doctor     = flag.Bool("doctor", false, "Check toolchain")
	version    = flag.Bool("version", false, "Print version")
	trace      = flag.Bool("trace", false, "Output timing trace")
	verbose    = flag.Bool("v", false, "Print the link command")
	watchFlag  = flag.Bool("watch", false, "Rebuild whenever the input changes")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Sundae Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: sundaec [options] <file%s>\n\n", rtabi.ExtSource)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	cfg := loadConfig()
	if *verbose {
		cfg.Verbose = true
	}

	if *version {
		fmt.Printf("sundaec version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *doctor {
		os.Exit(runDoctor(cfg))
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintf(os.Stderr, "usage: sundaec [options] <file%s>\n", rtabi.ExtSource)
		os.Exit(1)
	}

	filename := args[0]

	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	if *emitAST {
		os.Exit(runEmitAST(filename, *astFormat))
	}

	if *watchFlag {
		os.Exit(runWatch(filename, cfg))
	}

	os.Exit(runCompile(filename, cfg))
}

// runCompile compiles and links filename, printing diagnostics.
func runCompile(filename string, cfg *config) int {
	if err := compile(filename, cfg); err != nil {
		printError(os.Stderr, cfg.Color, err)
		return 1
	}
	return 0
}

// runWatch compiles once, then again on every change to filename.
func runWatch(filename string, cfg *config) int {
	runCompile(filename, cfg)
	err := watch(filename, cfg, func() {
		if runCompile(filename, cfg) == 0 {
			fmt.Fprintln(os.Stderr, "--- ok")
		}
	})
	printError(os.Stderr, cfg.Color, err)
	return 1
}

// tracer prints the time spent in each pipeline stage.
type tracer struct {
	w    io.Writer
	on   bool
	last time.Time
}

func newTracer(w io.Writer, on bool) *tracer {
	return &tracer{w: w, on: on, last: time.Now()}
}

func (t *tracer) stage(name string) {
	if !t.on {
		return
	}
	now := time.Now()
	fmt.Fprintf(t.w, "trace: %-8s %v\n", name, now.Sub(t.last))
	t.last = now
}

// compile runs the whole pipeline. The first failing stage ends it.
func compile(filename string, cfg *config) error {
	tr := newTracer(os.Stderr, *trace)

	file, err := parseSource(filename)
	if err != nil {
		return err
	}
	tr.stage("parse")

	module := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	g, err := codegen.New(module)
	if err != nil {
		return err
	}
	defer g.Dispose()

	if err := g.Generate(file); err != nil {
		return err
	}
	tr.stage("codegen")

	base := rtabi.OutputBase(filename, *output)
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WithStack(err)
		}
	}

	if *emitLL {
		if err := writeIR(g, base+rtabi.ExtIR); err != nil {
			return err
		}
	}

	obj := base + rtabi.ExtObject
	if err := g.EmitObjectFile(obj); err != nil {
		return err
	}
	tr.stage("emit")

	if *objOnly {
		return nil
	}

	exe := base
	if *output != "" && !strings.HasSuffix(*output, string(filepath.Separator)) {
		exe = *output
	}
	if err := link(cfg, obj, exe); err != nil {
		return err
	}
	tr.stage("link")
	return nil
}

// parseSource reads, tokenizes and parses one file.
func parseSource(filename string) (*syntax.File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return syntax.ParseFile(filename, src)
}

func writeIR(g *codegen.Generator, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := g.EmitIR(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename, format string) int {
	file, err := parseSource(filename)
	if err != nil {
		printError(os.Stderr, false, err)
		return 1
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, file); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
	default:
		syntax.Fprint(os.Stdout, file)
	}
	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var errs []string
	errh := func(pos syntax.Pos, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	}

	s := syntax.NewScanner(filename, f, errh)

	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for s.Next() {
		tok := s.Token()
		kind := tok.Kind.String()
		if tok.Kind == syntax.Literal {
			kind = tok.Lit.String()
		}
		fmt.Printf("%-20s %-12s %s\n", tok.Pos(), kind, formatLiteral(tok.Value))
	}

	if len(errs) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errs {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}
	return 0
}

// formatLiteral quotes a token's text with control characters escaped.
func formatLiteral(lit string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// runDoctor checks the toolchain and returns an exit code.
func runDoctor(cfg *config) int {
	fmt.Println("Sundae Toolchain Doctor")
	fmt.Println("=======================")
	fmt.Println()

	allOk := true

	fmt.Printf("Go:      %s ✓\n", runtime.Version())

	ccVersion, ccOk := checkTool(cfg.CC, "--version")
	fmt.Printf("cc:      %s", ccVersion)
	if ccOk {
		fmt.Println(" ✓")
	} else {
		fmt.Printf(" ✗ (%s not found, set SUNDAE_CC)\n", cfg.CC)
		allOk = false
	}

	fmt.Printf("runtime: %s", cfg.Runtime)
	if _, err := os.Stat(cfg.Runtime); cfg.Runtime != "" && err == nil {
		fmt.Println(" ✓")
	} else {
		fmt.Println(" ✗ (not found, set SUNDAE_RUNTIME)")
		allOk = false
	}

	triple, err := codegen.NativeTarget()
	fmt.Printf("llvm:    %s", triple)
	if err == nil {
		fmt.Println(" ✓")
	} else {
		fmt.Printf(" ✗ (%v)\n", err)
		allOk = false
	}

	fmt.Println()
	if allOk {
		fmt.Println("All required tools available!")
		return 0
	}

	fmt.Println("Some required tools are missing.")
	return 1
}

// checkTool runs a tool with the given arguments and returns the first line of output.
func checkTool(name string, args ...string) (string, bool) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", false
	}

	line, _, _ := strings.Cut(string(out), "\n")
	line = strings.TrimSpace(line)
	if len(line) > 60 {
		line = line[:57] + "..."
	}
	return line, true
}
