package utils

import "fmt"

func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}

// Unreachable halts on a value that a closed switch does not know about.
// Reaching it means an invariant was broken elsewhere, e.g. a new area type
// was introduced without updating every switch over it.
func Unreachable(what string, value any) {
	panic(fmt.Sprintf("unreachable: unknown %s %v", what, value))
}
