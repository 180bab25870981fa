// Package termhost renders compose views as character cells.
//
// A Host keeps a double-buffered cell grid. Paint draws every attached Box
// into the back buffer in z-order, and Flush writes only the cells that
// changed since the previous flush as ANSI escape sequences.
package termhost
