//go:build !assertions_disabled

package assert

import "fmt"

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// InRange asserts that lo <= index <= hi.
func InRange(index, lo, hi int) {
	True(lo <= index && index <= hi, "index %d outside [%d, %d]", index, lo, hi)
}
