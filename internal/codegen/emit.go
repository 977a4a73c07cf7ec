package codegen

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"tinygo.org/x/go-llvm"
)

// EmitIR writes the module as textual LLVM IR.
func (g *Generator) EmitIR(w io.Writer) error {
	_, err := io.WriteString(w, g.mod.String())
	return errors.Wrap(err, "writing IR")
}

// Verify checks the module for structural errors. A failure means the
// generator produced invalid IR.
func (g *Generator) Verify() error {
	if err := llvm.VerifyModule(g.mod, llvm.ReturnStatusAction); err != nil {
		return &Error{Kind: Internal, Msg: "invalid module: " + err.Error()}
	}
	return nil
}

// EmitObject verifies the module and writes a native object file for the
// host to w.
func (g *Generator) EmitObject(w io.Writer) error {
	if err := g.Verify(); err != nil {
		return err
	}

	triple, err := NativeTarget()
	if err != nil {
		return err
	}
	target, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return errors.Wrapf(err, "target %s", triple)
	}
	tm := target.CreateTargetMachine(triple, "generic", "",
		llvm.CodeGenLevelNone, llvm.RelocPIC, llvm.CodeModelDefault)
	defer tm.Dispose()

	td := tm.CreateTargetData()
	defer td.Dispose()
	g.mod.SetTarget(triple)
	g.mod.SetDataLayout(td.String())

	buf, err := tm.EmitToMemoryBuffer(g.mod, llvm.ObjectFile)
	if err != nil {
		return errors.Wrap(err, "emitting object code")
	}
	defer buf.Dispose()

	_, err = w.Write(buf.Bytes())
	return errors.Wrap(err, "writing object file")
}

// EmitObjectFile writes the object file to path.
func (g *Generator) EmitObjectFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := g.EmitObject(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

var (
	nativeOnce sync.Once
	nativeErr  error
)

// NativeTarget initializes LLVM's native target and returns the host's
// target triple.
func NativeTarget() (string, error) {
	nativeOnce.Do(func() {
		if err := llvm.InitializeNativeTarget(); err != nil {
			nativeErr = errors.Wrap(err, "initializing native target")
			return
		}
		if err := llvm.InitializeNativeAsmPrinter(); err != nil {
			nativeErr = errors.Wrap(err, "initializing native asm printer")
		}
	})
	if nativeErr != nil {
		return "", nativeErr
	}
	return llvm.DefaultTargetTriple(), nil
}
