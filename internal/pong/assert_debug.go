//go:build debug

package pong

import "fmt"

func invariant(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("pong: invariant violated: "+format, args...))
	}
}
