//go:build !composedebug

package debug

const strictDefault = false
