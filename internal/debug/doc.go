// Package debug provides leveled logging and contract assertions.
//
// Log output goes through glog, so verbosity is controlled with the usual
// -v and -logtostderr flags. Assertions panic when strict mode is on (the
// composedebug build tag, or SetStrict in tests) and otherwise log a warning
// so the caller can degrade to a safe value.
package debug
