// Package monitoring routes diagnostic output for the generator. The search
// engine and CLI log through Logf so callers (and tests) can redirect or
// silence progress chatter without touching search semantics.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Tagf logs with a bracketed subsystem tag, e.g. Tagf("search", "done").
func Tagf(tag, format string, v ...interface{}) {
	Logf("["+tag+"] "+format, v...)
}
