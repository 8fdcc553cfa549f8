package util

import (
	"cmp"
	"fmt"
	"slices"
)

// PanicIf panic with a formatted error when cond is true, only for states the
// caller can not recover from (bad constant patterns, broken invariants)
func PanicIf(cond bool, format string, v ...interface{}) {
	if !cond {
		return
	}
	panic(fmt.Errorf(format, v...))
}

// PanicIfErr panic when err is not nil, the message keep the original error
func PanicIfErr(err error, format string, v ...interface{}) {
	if err == nil {
		return
	}
	panic(fmt.Errorf(format+": %w", append(v, err)...))
}

// SortedKeys keys of m in ascending order, for deterministic iteration
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
