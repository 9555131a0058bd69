//go:build wasm

package internal

import "sync"

var once sync.Once
var globalRuntime *Runtime

func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}

func LookupRuntime() (*Runtime, bool) {
	return GetRuntime(), true
}

// ReleaseRuntime is a no-op on wasm, the single runtime lives for the whole process.
func ReleaseRuntime() bool {
	return false
}
