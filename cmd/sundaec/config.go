package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xyproto/env/v2"

	"github.com/you-not-fish/sundae/internal/rtabi"
)

// config is the driver configuration taken from the environment.
type config struct {
	CC         string        // C compiler used as the linker driver
	Runtime    string        // runtime library source or archive
	LDFlags    []string      // extra linker arguments
	WatchDelay time.Duration // debounce for -watch
	Color      bool          // colored diagnostics
	Verbose    bool
}

func loadConfig() *config {
	return &config{
		CC:         env.Str("SUNDAE_CC", "cc"),
		Runtime:    env.Str("SUNDAE_RUNTIME", findRuntime()),
		LDFlags:    strings.Fields(env.Str("SUNDAE_LDFLAGS")),
		WatchDelay: time.Duration(env.Int("SUNDAE_WATCH_DELAY_MS", 100)) * time.Millisecond,
		Color:      !env.Bool("NO_COLOR") && isTerminal(os.Stderr.Fd()),
		Verbose:    env.Bool("SUNDAE_VERBOSE"),
	}
}

// findRuntime looks for the runtime source next to the executable, then in
// the working directory and its parents. It returns "" if there is none.
func findRuntime() string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	for _, dir := range dirs {
		for {
			path := filepath.Join(dir, rtabi.RuntimeSource)
			if _, err := os.Stat(path); err == nil {
				return path
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return ""
}
