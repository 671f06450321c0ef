// Package tracing is a thin veneer over the schuko tracing framework,
// shared by all packages of this module. It selects a single tracer for
// the whole segmenting machinery and adds a helper for redirecting trace
// output to a test's log.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Tracer returns the tracer all segmenting packages log to.
func Tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// SetTestingLog redirects tracing output to the log of t for the duration
// of a test.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
}

// P sets a context parameter on the tracer, for one trace message.
func P(key string, value interface{}) tracing.Trace {
	return Tracer().P(key, value)
}

// Debugf traces a debug-level message.
func Debugf(format string, args ...interface{}) {
	Tracer().Debugf(format, args...)
}

// Infof traces an info-level message.
func Infof(format string, args ...interface{}) {
	Tracer().Infof(format, args...)
}

// Errorf traces an error-level message.
func Errorf(format string, args ...interface{}) {
	Tracer().Errorf(format, args...)
}
