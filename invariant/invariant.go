// Package invariant guards internal consistency. Builds tagged "debug" panic
// on a violated invariant; other builds report it and let the caller clamp.
package invariant

import "sync/atomic"

// Reporter receives violations in non-debug builds
type Reporter func(msg string)

var reporter atomic.Pointer[Reporter]

// SetReporter installs the violation sink; nil disables reporting
func SetReporter(r Reporter) {
	if r == nil {
		reporter.Store(nil)
		return
	}
	reporter.Store(&r)
}

// Check returns ok unchanged so callers can clamp when it is false
func Check(ok bool, msg string) bool {
	if !ok {
		violated(msg)
	}
	return ok
}

func report(msg string) {
	if r := reporter.Load(); r != nil {
		(*r)(msg)
	}
}
