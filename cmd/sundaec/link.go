package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// link builds exe from an object file and the runtime library using the
// configured C compiler. Anything the linker writes to stderr counts as a
// failure.
func link(cfg *config, obj, exe string) error {
	if cfg.Runtime == "" {
		return errors.New("runtime library not found (set SUNDAE_RUNTIME)")
	}

	args := []string{obj, cfg.Runtime}
	args = append(args, cfg.LDFlags...)
	args = append(args, "-o", exe)
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "%s %s\n", cfg.CC, strings.Join(args, " "))
	}

	var stderr bytes.Buffer
	cmd := exec.Command(cfg.CC, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	msg := strings.TrimSpace(stderr.String())
	switch {
	case err != nil && msg != "":
		return errors.Wrapf(err, "linking %s:\n%s", exe, msg)
	case err != nil:
		return errors.Wrapf(err, "linking %s", exe)
	case msg != "":
		return errors.Errorf("linking %s:\n%s", exe, msg)
	}
	return nil
}
