//go:build !debug

package engine

import "github.com/sirupsen/logrus"

// Assert logs a violated invariant and continues in release builds
func (w *World) Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	w.Resource.Status.Ints.Get("engine.invariant_violations").Add(1)
	w.Resource.Log.WithFields(logrus.Fields{"frame": w.Resource.Time.Frame}).Errorf("invariant violated: "+format, args...)
}
