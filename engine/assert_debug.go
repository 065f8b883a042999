//go:build debug

package engine

import "fmt"

// Assert panics on a violated invariant in debug builds
func (w *World) Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
