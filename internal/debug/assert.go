package debug

import (
	"fmt"
	"sync/atomic"
)

var strict atomic.Bool

func init() {
	strict.Store(strictDefault)
}

// ContractError is the panic value raised by a failed assertion in strict mode.
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string {
	return "compose: contract violation: " + e.Msg
}

// Strict reports whether failed assertions panic.
func Strict() bool {
	return strict.Load()
}

// SetStrict switches strict mode and returns a func restoring the previous value.
func SetStrict(on bool) (restore func()) {
	prev := strict.Swap(on)
	return func() { strict.Store(prev) }
}

// Assertf checks a component contract. It returns cond so callers can
// degrade inline:
//
//	if !debug.Assertf(size.IsFinite(), "non-finite size %v", size) {
//		size = Size{}
//	}
func Assertf(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	msg := sprintf(format, args...)
	if strict.Load() {
		panic(&ContractError{Msg: msg})
	}
	Warnf("contract violation: %s", msg)
	return false
}

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
