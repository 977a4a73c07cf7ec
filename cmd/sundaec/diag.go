package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/you-not-fish/sundae/internal/codegen"
	"github.com/you-not-fish/sundae/internal/syntax"
)

// color is an ANSI escape sequence.
type color string

const (
	red    color = "\033[31m"
	yellow color = "\033[33m"
	bold   color = "\033[1m"
	reset  color = "\033[0m"
)

// paint wraps s in c when on is set.
func (c color) paint(on bool, s string) string {
	if !on {
		return s
	}
	return string(c) + s + string(reset)
}

// printError writes err as a diagnostic. Syntax and codegen errors carry a
// position and a kind; everything else is printed as is.
func printError(w io.Writer, useColor bool, err error) {
	var (
		serr *syntax.Error
		cerr *codegen.Error
	)
	switch {
	case errors.As(err, &serr):
		printDiag(w, useColor, serr.Pos, serr.Kind.String(), serr.Msg)
	case errors.As(err, &cerr):
		// keep the "in function ..." context added by wrapping
		context := strings.TrimSuffix(err.Error(), cerr.Error())
		printDiag(w, useColor, cerr.Pos, cerr.Kind.String(), context+cerr.Msg)
	default:
		fmt.Fprintf(w, "%s %v\n", red.paint(useColor, "error:"), err)
	}
}

func printDiag(w io.Writer, useColor bool, pos syntax.Pos, kind, msg string) {
	if pos.IsValid() {
		fmt.Fprintf(w, "%s ", bold.paint(useColor, pos.String()+":"))
	}
	fmt.Fprintf(w, "%s %s %s\n",
		red.paint(useColor, "error:"),
		msg,
		yellow.paint(useColor, "["+kind+"]"))
}
