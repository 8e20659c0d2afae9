package utils

import "fmt"

// Assert panics when a programmer contract is violated. It is used for
// conditions that are never recoverable at runtime, such as reference
// count misuse.
func Assert(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
