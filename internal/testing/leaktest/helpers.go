// Package leaktest detects goroutines left running by background loops.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long Verify waits for goroutines to exit
const DefaultSettleTimeout = time.Second

// GoroutineChecker records the goroutine count at creation
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Verify polls until the goroutine count is back within tolerance of the
// recorded count, failing the test after DefaultSettleTimeout.
func (g *GoroutineChecker) Verify(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(DefaultSettleTimeout)
	for {
		runtime.Gosched()
		after := runtime.NumGoroutine()
		if after-g.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d, after=%d, tolerance=%d", g.before, after, tolerance)
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// VerifyNone registers a cleanup that fails the test if goroutines started
// during it are still running when it ends.
func VerifyNone(t testing.TB) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	t.Cleanup(func() { checker.Verify(0) })
}
