//go:build !unix

package main

func notifyResize(func()) (stop func()) {
	return func() {}
}
