package debug

import "github.com/golang/glog"

// traceLevel is the glog verbosity at which per-pass traces are written.
const traceLevel = 2

// Log writes a trace message when -v is at least 2.
func Log(format string, args ...any) {
	if glog.V(traceLevel) {
		glog.InfoDepth(1, sprintf(format, args...))
	}
}

// Warnf writes a warning regardless of verbosity.
func Warnf(format string, args ...any) {
	glog.WarningDepth(1, sprintf(format, args...))
}

// Enabled reports whether trace logging is on. Use it to skip building
// expensive log arguments.
func Enabled() bool {
	return bool(glog.V(traceLevel))
}
