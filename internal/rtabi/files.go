package rtabi

import (
	"path/filepath"
	"strings"
)

// File extensions used by the driver.
const (
	ExtSource = ".sd"
	ExtIR     = ".ll"
	ExtObject = ".o"
)

// RuntimeSource is the runtime library path relative to the repository root.
const RuntimeSource = "runtime/sundae_rt.c"

// OutputBase returns the artifact path stem for a compilation of srcFile.
// An empty output, or one ending in a path separator, names a directory and
// the stem is the source's base name inside it. Otherwise output itself is
// the stem with any extension removed.
func OutputBase(srcFile, output string) string {
	module := strings.TrimSuffix(filepath.Base(srcFile), filepath.Ext(srcFile))
	if output == "" || strings.HasSuffix(output, string(filepath.Separator)) {
		return filepath.Join(output, module)
	}
	return strings.TrimSuffix(output, filepath.Ext(output))
}
