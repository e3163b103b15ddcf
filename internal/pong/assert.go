//go:build !debug

package pong

// invariant is compiled out of release builds. Build with -tags debug to make
// court violations panic.
func invariant(bool, string, ...any) {}
